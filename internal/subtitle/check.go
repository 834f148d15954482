package subtitle

import (
	"fmt"

	"github.com/mgpai22/srtparse/internal/srt"
)

// kinds of content problems that are valid syntax but probably wrong
type IssueKind string

const (
	IssueEndBeforeStart IssueKind = "end-before-start"
	IssueOverlap        IssueKind = "overlap"
	IssueIndexOrder     IssueKind = "index-order"
)

// single content problem, Position is the 0-based item position
type Issue struct {
	Kind     IssueKind
	Position int
	Index    int
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("#%d (%s): %s", i.Index, i.Kind, i.Message)
}

type CheckOptions struct {
	// report items starting before the previous one ends
	Overlap bool
}

func DefaultCheckOptions() CheckOptions {
	return CheckOptions{Overlap: true}
}

// reports timing and numbering problems the parser accepts
func Check(items []srt.Item, opts CheckOptions) []Issue {
	var issues []Issue
	for i, item := range items {
		if item.End.Before(item.Start) {
			issues = append(issues, Issue{
				Kind:     IssueEndBeforeStart,
				Position: i,
				Index:    item.Index,
				Message: fmt.Sprintf(
					"ends at %s before it starts at %s",
					item.End,
					item.Start,
				),
			})
		}
		if i == 0 {
			continue
		}

		prev := items[i-1]
		if item.Index <= prev.Index {
			issues = append(issues, Issue{
				Kind:     IssueIndexOrder,
				Position: i,
				Index:    item.Index,
				Message: fmt.Sprintf(
					"index does not increase (previous is %d)",
					prev.Index,
				),
			})
		}
		if opts.Overlap && item.Start.Before(prev.End) {
			issues = append(issues, Issue{
				Kind:     IssueOverlap,
				Position: i,
				Index:    item.Index,
				Message: fmt.Sprintf(
					"starts at %s before #%d ends at %s",
					item.Start,
					prev.Index,
					prev.End,
				),
			})
		}
	}
	return issues
}

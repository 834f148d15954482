package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mgpai22/srtparse/internal/srt"
	"github.com/mgpai22/srtparse/internal/subtitle"
)

type jsonItem struct {
	Index   int    `json:"index"`
	Start   string `json:"start"`
	End     string `json:"end"`
	StartMS uint64 `json:"start_ms"`
	EndMS   uint64 `json:"end_ms"`
	Text    string `json:"text"`
}

type jsonIssue struct {
	Kind    string `json:"kind"`
	Index   int    `json:"index"`
	Message string `json:"message"`
}

type jsonReport struct {
	File   string      `json:"file"`
	Items  int         `json:"items"`
	Error  *jsonError  `json:"error,omitempty"`
	Issues []jsonIssue `json:"issues,omitempty"`
}

type jsonError struct {
	Kind    string `json:"kind,omitempty"`
	Line    int    `json:"line,omitempty"`
	Text    string `json:"text,omitempty"`
	Message string `json:"message"`
}

func writeItems(w io.Writer, format string, items []srt.Item) error {
	if format == "json" {
		out := make([]jsonItem, 0, len(items))
		for _, it := range items {
			out = append(out, jsonItem{
				Index:   it.Index,
				Start:   it.Start.String(),
				End:     it.End.String(),
				StartMS: it.Start.TotalMilliseconds(),
				EndMS:   it.End.TotalMilliseconds(),
				Text:    it.Text,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, it := range items {
		entry := subtitle.EntryFromItem(it)
		if _, err := fmt.Fprintf(
			w,
			"#%d  %s → %s  (%v)\n",
			it.Index,
			it.Start,
			it.End,
			entry.EndTime-entry.StartTime,
		); err != nil {
			return err
		}
		for _, line := range strings.Split(it.Text, "\n") {
			if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}

func reportFromError(file string, err error) jsonReport {
	report := jsonReport{File: file, Error: &jsonError{Message: err.Error()}}
	var perr *srt.ParseError
	if errors.As(err, &perr) {
		report.Error.Kind = perr.Kind.String()
		report.Error.Line = perr.Line
		report.Error.Text = perr.Text
	}
	return report
}

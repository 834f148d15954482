package srt

import (
	"iter"
	"strings"
)

// Block is one blank-line-delimited chunk of source text.
type Block struct {
	// 1-based source line of Lines[0]
	Line  int
	Lines []string
}

// Blocks splits text into blocks lazily, one per maximal run of non-blank
// lines. "\r\n" and lone "\r" count as line breaks. Blank lines (empty or
// whitespace only) separate blocks and never produce one themselves.
func Blocks(text string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		var cur Block
		lineNum := 0

		for line := range splitLines(text) {
			lineNum++
			if strings.TrimSpace(line) == "" {
				if len(cur.Lines) > 0 {
					if !yield(cur) {
						return
					}
					cur = Block{}
				}
				continue
			}
			if len(cur.Lines) == 0 {
				cur.Line = lineNum
			}
			cur.Lines = append(cur.Lines, line)
		}

		if len(cur.Lines) > 0 {
			yield(cur)
		}
	}
}

// splitLines yields the lines of text without their terminators.
func splitLines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for text != "" {
			i := strings.IndexAny(text, "\r\n")
			if i < 0 {
				yield(text)
				return
			}
			if !yield(text[:i]) {
				return
			}
			if text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			text = text[i+1:]
		}
	}
}

// Package srt parses SubRip subtitle text.
//
// Parsing is split in two stages: Blocks cuts the text at blank lines and
// ParseBlock turns each block into an Item. Items and Parse run both stages
// and stop at the first malformed block. Nothing here does I/O or keeps
// state between calls, so concurrent use on separate inputs is safe.
package srt

import "iter"

// Items parses text lazily. Items come out in source order; the first
// error is yielded once and ends the sequence.
func Items(text string) iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		for b := range Blocks(text) {
			item, err := ParseBlock(b)
			if err != nil {
				yield(Item{}, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Parse returns every item in text, or the first error and no items.
func Parse(text string) ([]Item, error) {
	var items []Item
	for item, err := range Items(text) {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

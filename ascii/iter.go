package ascii

import (
	"iter"

	"github.com/mhr3/asciitype/internal/bytealg"
)

// SplitIter walks the pieces of a View separated by a single character. It
// can be consumed from both ends; the two ends meet without repeating or
// skipping a piece.
type SplitIter struct {
	rest  View
	sep   Char
	ended bool
}

// Next returns the next piece from the front.
func (it *SplitIter) Next() (View, bool) {
	if it.ended {
		return nil, false
	}
	i := bytealg.IndexByte(it.rest.Bytes(), byte(it.sep))
	if i < 0 {
		it.ended = true
		return it.rest, true
	}
	piece := it.rest[:i]
	it.rest = it.rest[i+1:]
	return piece, true
}

// NextBack returns the next piece from the back.
func (it *SplitIter) NextBack() (View, bool) {
	if it.ended {
		return nil, false
	}
	i := bytealg.LastIndexByte(it.rest.Bytes(), byte(it.sep))
	if i < 0 {
		it.ended = true
		return it.rest, true
	}
	piece := it.rest[i+1:]
	it.rest = it.rest[:i]
	return piece, true
}

// All drains the iterator front to back.
func (it *SplitIter) All() iter.Seq[View] {
	return drain(it.Next)
}

// Backward drains the iterator back to front.
func (it *SplitIter) Backward() iter.Seq[View] {
	return drain(it.NextBack)
}

// LineIter walks the lines of a View. It can be consumed from both ends.
type LineIter struct {
	rest View
}

// Next returns the next line from the front.
func (it *LineIter) Next() (View, bool) {
	if len(it.rest) == 0 {
		return nil, false
	}
	i := bytealg.IndexByte(it.rest.Bytes(), byte(LineFeed))
	if i < 0 {
		line := it.rest
		it.rest = it.rest[:0]
		return line, true
	}
	line := it.rest[:i]
	if i > 0 && line[i-1] == CarriageReturn {
		line = line[:i-1]
	}
	it.rest = it.rest[i+1:]
	return line, true
}

// NextBack returns the next line from the back.
func (it *LineIter) NextBack() (View, bool) {
	if len(it.rest) == 0 {
		return nil, false
	}
	end := len(it.rest)
	if it.rest[end-1] == LineFeed {
		end--
		if end > 0 && it.rest[end-1] == CarriageReturn {
			end--
		}
	}
	body := it.rest[:end]
	start := bytealg.LastIndexByte(body.Bytes(), byte(LineFeed)) + 1
	it.rest = body[:start]
	return body[start:], true
}

// All drains the iterator front to back.
func (it *LineIter) All() iter.Seq[View] {
	return drain(it.Next)
}

// Backward drains the iterator back to front.
func (it *LineIter) Backward() iter.Seq[View] {
	return drain(it.NextBack)
}

func drain(next func() (View, bool)) iter.Seq[View] {
	return func(yield func(View) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

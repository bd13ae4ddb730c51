package token

import (
	"unicode/utf8"
)

// EOF is returned by Cursor.Current once the input is exhausted.
const EOF rune = -1

// Cursor is a forward-only read position over a text. Positions are
// counted in runes; a byte offset is kept alongside so that each step is
// constant time.
//
// Invalid UTF-8 decodes as utf8.RuneError, one byte at a time.
type Cursor struct {
	src string
	off int // byte offset into src
	n   int // rune offset from the start of src
	doc *PosDoc
	// base is the rune offset of src[0] in the document, non-zero for
	// sub-views created by Rest.
	base int
}

func NewCursor(src string) *Cursor {
	return &Cursor{src: src, doc: NewPosDoc(src)}
}

// Current returns the rune at the position, or EOF.
func (c *Cursor) Current() rune {
	if c.off >= len(c.src) {
		return EOF
	}
	r := rune(c.src[c.off])
	if r < utf8.RuneSelf {
		return r
	}
	r, _ = utf8.DecodeRuneInString(c.src[c.off:])
	return r
}

// Next returns the current rune and advances past it.
func (c *Cursor) Next() rune {
	r := c.Current()
	c.Advance(1)
	return r
}

// Advance moves forward n runes, stopping at the end of input.
func (c *Cursor) Advance(n int) {
	for ; n > 0 && c.off < len(c.src); n-- {
		if c.src[c.off] < utf8.RuneSelf {
			c.off++
		} else {
			_, w := utf8.DecodeRuneInString(c.src[c.off:])
			c.off += w
		}
		c.n++
	}
}

// Peek returns the next n runes, or "" if fewer than n remain.
func (c *Cursor) Peek(n int) string {
	end := c.off
	for i := 0; i < n; i++ {
		if end >= len(c.src) {
			return ""
		}
		_, w := utf8.DecodeRuneInString(c.src[end:])
		end += w
	}
	return c.src[c.off:end]
}

// Rest returns a cursor over the remaining input. Moving it does not move
// c; use Commit to move c over what it consumed.
func (c *Cursor) Rest() *Cursor {
	return &Cursor{
		src:  c.src[c.off:],
		doc:  c.doc,
		base: c.base + c.n,
	}
}

// Scanned returns the text consumed by c since it was created.
func (c *Cursor) Scanned() string {
	return c.src[:c.off]
}

// Commit advances c over the text consumed by sub, which must have been
// obtained from c.Rest with no movement of c since.
func (c *Cursor) Commit(sub *Cursor) {
	c.off += sub.off
	c.n += sub.n
}

// AtEOF reports whether the input is exhausted.
func (c *Cursor) AtEOF() bool {
	return c.off >= len(c.src)
}

// Offset returns the position in runes from the start of the document.
func (c *Cursor) Offset() int {
	return c.base + c.n
}

// Pos returns the current position for reporting.
func (c *Cursor) Pos() *Pos {
	return c.doc.Pos(c.Offset())
}

// Doc returns the position document shared by c and its sub-views.
func (c *Cursor) Doc() *PosDoc {
	return c.doc
}

package parser

import "unicode/utf8"

// cursor is an immutable read position into the source. Advancing returns a
// new cursor, so a failed alternative can resume from the one it was given.
type cursor struct {
	src string
	off int
	pos Position
}

func newCursor(src string) cursor {
	return cursor{src: src}
}

func (c cursor) rest() string {
	return c.src[c.off:]
}

func (c cursor) atEOF() bool {
	return c.off >= len(c.src)
}

// advance moves n bytes forward. "\r\n", "\r" and "\n" each end a line.
func (c cursor) advance(n int) cursor {
	end := c.off + n
	if end > len(c.src) {
		end = len(c.src)
	}
	for c.off < end {
		r, size := utf8.DecodeRuneInString(c.src[c.off:])
		switch {
		case r == '\n':
			c.pos.Line++
			c.pos.Character = 0
		case r == '\r' && (c.off+1 >= len(c.src) || c.src[c.off+1] != '\n'):
			c.pos.Line++
			c.pos.Character = 0
		default:
			c.pos.Character++
		}
		c.off += size
	}
	return c
}

// slice returns the source between c and a later cursor.
func (c cursor) slice(to cursor) string {
	return c.src[c.off:to.off]
}

func (c cursor) rangeTo(to cursor) Range {
	return Range{Start: c.pos, End: to.pos}
}

// PositionAt converts a byte offset in src to a Position. Offsets past the end
// clamp to the end of the text.
func PositionAt(src string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	return newCursor(src).advance(offset).pos
}

// OffsetAt converts a Position to a byte offset in src. A character past the
// end of its line clamps to the line end; a line past the end of the text
// clamps to len(src).
func OffsetAt(src string, pos Position) int {
	c := newCursor(src)
	for c.pos.Line < pos.Line {
		i := nextLineBreak(c.rest())
		if i < 0 {
			return len(src)
		}
		c = c.advance(i)
	}
	for !c.atEOF() && c.pos.Line == pos.Line && c.pos.Character < pos.Character {
		if r, _ := utf8.DecodeRuneInString(c.rest()); r == '\r' || r == '\n' {
			break
		}
		c = c.advance(runeLen(c.rest()))
	}
	return c.off
}

// nextLineBreak returns the number of bytes up to and including the next
// line terminator, or -1 when s holds no terminator.
func nextLineBreak(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			return i + 1
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				return i + 2
			}
			return i + 1
		}
	}
	return -1
}

func runeLen(s string) int {
	_, size := utf8.DecodeRuneInString(s)
	return size
}

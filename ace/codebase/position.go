package codebase

import (
	"unicode/utf16"
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/dhamidi/acels/ace/parser"
)

// Editors count characters in UTF-16 code units, the parser counts code
// points. The two differ only for characters outside the Basic Multilingual
// Plane.

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

func unitsOf(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

// lineBounds returns the byte offsets where line starts and where its text
// ends, before the terminator. ok is false past the last line.
func lineBounds(src string, line uint32) (start, end int, ok bool) {
	start = parser.OffsetAt(src, parser.Position{Line: line})
	if parser.PositionAt(src, start).Line != line {
		return len(src), len(src), false
	}
	end = start
	for end < len(src) && src[end] != '\n' && src[end] != '\r' {
		end++
	}
	return start, end, true
}

// FromUTF16 converts an editor position to a parser position. A character
// past the end of its line clamps to the line end, a line past the end of
// the text to the end of the text.
func FromUTF16(src string, line, character uint32) parser.Position {
	start, end, ok := lineBounds(src, line)
	if !ok {
		return parser.PositionAt(src, len(src))
	}
	units, chars := 0, 0
	for off := start; off < end; {
		r, size := utf8.DecodeRuneInString(src[off:end])
		need := unitsOf(r)
		if safeUint32(units+need) > character {
			break
		}
		units += need
		chars++
		off += size
	}
	return parser.Position{Line: line, Character: safeUint32(chars)}
}

// ToUTF16 converts a parser position to an editor position.
func ToUTF16(src string, pos parser.Position) (line, character uint32) {
	start, end, ok := lineBounds(src, pos.Line)
	if !ok {
		return pos.Line, 0
	}
	units := 0
	chars := uint32(0)
	for off := start; off < end && chars < pos.Character; {
		r, size := utf8.DecodeRuneInString(src[off:end])
		units += unitsOf(r)
		chars++
		off += size
	}
	return pos.Line, safeUint32(units)
}

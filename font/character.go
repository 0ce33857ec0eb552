package font

// SegmentMask covers the 15 usable segment bits (0..14).
const SegmentMask uint16 = 0x7FFF

// CopySuffix is appended to the name of derived copies.
const CopySuffix = "_copy"

// Character is one glyph: a segment bitmask and an optional name.
// An empty Name means the character has no name.
type Character struct {
	Segments uint16
	Name     string
}

// HasName reports whether c carries a name.
func (c Character) HasName() bool { return c.Name != "" }

// IsEmptyContent reports whether c has no segments and no name. Such a
// character still occupies its slot but is eligible for auto-revert.
func (c Character) IsEmptyContent() bool {
	return c.Segments == 0 && c.Name == ""
}

// Derived returns the character written by copy and paste operations:
// segments verbatim, name suffixed with CopySuffix when present.
func (c Character) Derived() Character {
	out := Character{Segments: c.Segments}
	if c.HasName() {
		out.Name = c.Name + CopySuffix
	}
	return out
}

// HasSegment reports whether segment bit is lit.
func (c Character) HasSegment(bit int) bool {
	if bit < 0 || bit > 14 {
		return false
	}
	return c.Segments&(1<<uint(bit)) != 0
}

// ToggleSegment returns c with segment bit flipped. Bits outside 0..14 are
// ignored.
func (c Character) ToggleSegment(bit int) Character {
	if bit < 0 || bit > 14 {
		return c
	}
	c.Segments ^= 1 << uint(bit)
	return c
}

package zedit

// CharPos is a caret position in a paragraph: the index of the line and the
// rune column within that line.
type CharPos struct {
	Line   int
	Column int
}

// CmpPos lexicographically compares two char positions and returns -1 if a is
// before b, 0 if they are equal, and 1 if a is after b.
func CmpPos(a, b CharPos) int {
	switch {
	case a.Line < b.Line:
		return -1
	case a.Line > b.Line:
		return 1
	case a.Column < b.Column:
		return -1
	case a.Column > b.Column:
		return 1
	}
	return 0
}

// MaxPos returns the later of the two positions.
func MaxPos(a, b CharPos) CharPos {
	if CmpPos(a, b) < 0 {
		return b
	}
	return a
}

// MinPos returns the earlier of the two positions.
func MinPos(a, b CharPos) CharPos {
	if CmpPos(a, b) <= 0 {
		return a
	}
	return b
}

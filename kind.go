package shapes

// Kind identifies the concrete variant of a shape.
type Kind int

const (
	// KindUnknown is the zero Kind.
	KindUnknown Kind = iota

	// KindDisk is a disk defined by its radius.
	KindDisk

	// KindTriangle is a triangle whose sides do not satisfy the
	// Pythagorean relation.
	KindTriangle

	// KindRightTriangle is a triangle classified as right-angled at
	// construction.
	KindRightTriangle
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDisk:
		return "disk"
	case KindTriangle:
		return "triangle"
	case KindRightTriangle:
		return "right triangle"
	default:
		return "unknown"
	}
}

// IsTriangle reports whether k is one of the triangle variants.
func (k Kind) IsTriangle() bool {
	return k == KindTriangle || k == KindRightTriangle
}

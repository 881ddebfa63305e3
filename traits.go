package strview

import "cmp"

// Unit is a fixed-width code unit: bytes, UTF-16 units, UCS-4 units or runes.
// The view treats input as a flat sequence of these; it never performs
// encoding conversion or grapheme segmentation.
type Unit interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// Traits is the per-unit equality/ordering strategy a view is instantiated
// with. Implementations must be stateless struct types so the zero value is
// usable and views stay plain (pointer, length) values.
type Traits[U any] interface {
	Eq(a, b U) bool
	Compare(a, b U) int
}

// Ord orders units by their numeric value. It is the default strategy.
type Ord[U Unit] struct{}

func (Ord[U]) Eq(a, b U) bool     { return a == b }
func (Ord[U]) Compare(a, b U) int { return cmp.Compare(a, b) }

// ASCIIFold compares byte units case-insensitively over ASCII letters.
// Non-letter bytes compare by value.
type ASCIIFold struct{}

func (ASCIIFold) Eq(a, b byte) bool     { return foldByte(a) == foldByte(b) }
func (ASCIIFold) Compare(a, b byte) int { return cmp.Compare(foldByte(a), foldByte(b)) }

func foldByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

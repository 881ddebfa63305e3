// Package strview provides a non-owning view over a contiguous sequence of
// fixed-width code units: a (pointer, length) window into storage owned
// elsewhere, plus read-only string algorithms that never copy or allocate.
//
// A view never extends the lifetime of the data it references; the owner
// must outlive every view into it. Views are copied by value and copying
// never touches the referenced storage.
package strview

import (
	"math"
	"math/bits"

	"github.com/rawbytedev/strview/internal/unitmem"
)

// View is a window [data, data+length) into caller-owned unit storage.
// U is the code unit type and T the equality/ordering strategy.
// The zero value is an empty view.
type View[U Unit, T Traits[U]] struct {
	s []U
}

// Common instantiations.
type (
	Bytes       = View[byte, Ord[byte]]
	Runes       = View[rune, Ord[rune]]
	UTF16       = View[uint16, Ord[uint16]]
	FoldedBytes = View[byte, ASCIIFold]
)

// Of returns a view over units with the default ordering strategy.
// The slice header is the (pointer, length) pair; the backing array is not
// copied and must stay alive while the view is in use.
func Of[U Unit](units []U) View[U, Ord[U]] {
	return View[U, Ord[U]]{s: units}
}

// WithTraits is Of with an explicit strategy instantiation.
func WithTraits[U Unit, T Traits[U]](units []U) View[U, T] {
	return View[U, T]{s: units}
}

// Len returns the number of units in the window.
func (v View[U, T]) Len() int { return len(v.s) }

// Empty reports whether the window has zero length.
func (v View[U, T]) Empty() bool { return len(v.s) == 0 }

// MaxLen is the implementation-defined upper bound on window length,
// derived from address-space and unit-size limits. Informational only.
func (v View[U, T]) MaxLen() int {
	const word = bits.UintSize / 8
	return (math.MaxInt - 2*word) / unitmem.Size[U]() / 4
}

// Units exposes the underlying window so collaborators can copy its content
// or construct further views. The result must not be written to.
func (v View[U, T]) Units() []U { return v.s }

// Unit returns the unit at pos. pos must satisfy pos < Len; a violation
// panics via the runtime bounds check.
func (v View[U, T]) Unit(pos int) U { return v.s[pos] }

// At is the bounds-checked accessor: it returns an out-of-range error
// instead of panicking when pos is not a valid index.
func (v View[U, T]) At(pos int) (U, error) {
	if pos < 0 || pos >= len(v.s) {
		var zero U
		return zero, outOfRange("At", pos, len(v.s))
	}
	return v.s[pos], nil
}

// Front returns the first unit. The view must be non-empty.
func (v View[U, T]) Front() U { return v.s[0] }

// Back returns the last unit. The view must be non-empty.
func (v View[U, T]) Back() U { return v.s[len(v.s)-1] }

// RemovePrefix advances the window start by n. n must satisfy n <= Len.
func (v *View[U, T]) RemovePrefix(n int) { v.s = v.s[n:] }

// RemoveSuffix shrinks the window length by n. n must satisfy n <= Len.
func (v *View[U, T]) RemoveSuffix(n int) { v.s = v.s[:len(v.s)-n] }

// Swap exchanges the windows of two views. The referenced storage is
// untouched.
func (v *View[U, T]) Swap(o *View[U, T]) { v.s, o.s = o.s, v.s }

// Prefix returns the window of the first n units, unchecked.
func (v View[U, T]) Prefix(n int) View[U, T] { return View[U, T]{s: v.s[:n]} }

// Suffix returns the window of the last n units, unchecked.
func (v View[U, T]) Suffix(n int) View[U, T] { return View[U, T]{s: v.s[len(v.s)-n:]} }

// Substr returns the window of min(Len-pos, n) units starting at pos.
// A negative n means the rest of the view. pos == Len is legal and yields
// an empty view; pos > Len is an out-of-range error.
func (v View[U, T]) Substr(pos, n int) (View[U, T], error) {
	if pos < 0 || pos > len(v.s) {
		return View[U, T]{}, outOfRange("Substr", pos, len(v.s))
	}
	rlen := len(v.s) - pos
	if n >= 0 && n < rlen {
		rlen = n
	}
	return View[U, T]{s: v.s[pos : pos+rlen]}, nil
}

// Copy copies min(Len-pos, n) units into dst and returns the count copied.
// A negative n means the rest of the view. dst bounds the copy as usual for
// a Go copy; pos > Len is an out-of-range error.
func (v View[U, T]) Copy(dst []U, n, pos int) (int, error) {
	if pos < 0 || pos > len(v.s) {
		return 0, outOfRange("Copy", pos, len(v.s))
	}
	rlen := len(v.s) - pos
	if n >= 0 && n < rlen {
		rlen = n
	}
	return copy(dst, v.s[pos:pos+rlen]), nil
}

// Compare orders two views lexicographically unit-by-unit under the traits
// strategy, with ties broken by length (shorter < longer). It returns a
// negative, zero or positive result.
func (v View[U, T]) Compare(o View[U, T]) int {
	var tr T
	n := min(len(v.s), len(o.s))
	for i := 0; i < n; i++ {
		if c := tr.Compare(v.s[i], o.s[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(v.s) < len(o.s):
		return -1
	case len(v.s) > len(o.s):
		return 1
	}
	return 0
}

// Equal reports content equality under the traits strategy.
func (v View[U, T]) Equal(o View[U, T]) bool {
	return len(v.s) == len(o.s) && v.Compare(o) == 0
}

// CompareRange compares the [pos1, pos1+n1) window of v against o.
// Bounds failures surface as the same out-of-range error Substr reports.
func (v View[U, T]) CompareRange(pos1, n1 int, o View[U, T]) (int, error) {
	sub, err := v.Substr(pos1, n1)
	if err != nil {
		return 0, err
	}
	return sub.Compare(o), nil
}

// CompareRanges compares windows of both views.
func (v View[U, T]) CompareRanges(pos1, n1 int, o View[U, T], pos2, n2 int) (int, error) {
	sub1, err := v.Substr(pos1, n1)
	if err != nil {
		return 0, err
	}
	sub2, err := o.Substr(pos2, n2)
	if err != nil {
		return 0, err
	}
	return sub1.Compare(sub2), nil
}

// StartsWith reports whether the view begins with x.
func (v View[U, T]) StartsWith(x View[U, T]) bool {
	return len(x.s) <= len(v.s) && v.Prefix(len(x.s)).Equal(x)
}

// StartsWithUnit reports whether the view begins with the unit u.
func (v View[U, T]) StartsWithUnit(u U) bool {
	var tr T
	return len(v.s) > 0 && tr.Eq(v.s[0], u)
}

// EndsWith reports whether the view ends with x.
func (v View[U, T]) EndsWith(x View[U, T]) bool {
	return len(x.s) <= len(v.s) && v.Suffix(len(x.s)).Equal(x)
}

// EndsWithUnit reports whether the view ends with the unit u.
func (v View[U, T]) EndsWithUnit(u U) bool {
	var tr T
	return len(v.s) > 0 && tr.Eq(v.s[len(v.s)-1], u)
}

// Contains reports whether x occurs in the view.
func (v View[U, T]) Contains(x View[U, T]) bool { return v.Find(x) != NotFound }

// ContainsUnit reports whether the unit u occurs in the view.
func (v View[U, T]) ContainsUnit(u U) bool { return v.FindUnit(u) != NotFound }

package strview

import (
	"unsafe"

	"github.com/rawbytedev/strview/internal/unitmem"
)

// Zero-copy constructors. Every view built here shares memory with its
// source:
//   - the source must outlive the view (caller obligation, not enforced)
//   - the window must never be written through
// This is the same contract as any raw (pointer, length) view.

// OfString returns a byte view aliasing the string's storage without
// copying. A view over a string literal references static storage and is
// valid for the whole program.
func OfString(s string) Bytes {
	return Bytes{s: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// OfStringTraits is OfString with an explicit strategy instantiation,
// e.g. OfStringTraits[ASCIIFold] for case-insensitive byte views.
func OfStringTraits[T Traits[byte]](s string) View[byte, T] {
	return View[byte, T]{s: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// AsString aliases a byte view's window as a string without copying.
// The result must not outlive the storage backing the view.
func AsString[T Traits[byte]](v View[byte, T]) string {
	if len(v.s) == 0 {
		return ""
	}
	return unsafe.String(&v.s[0], len(v.s))
}

// FromPtr returns a view over the n units starting at p. p is not validated
// against n; an oversized count causes undefined reads later, as for any
// raw view. p may be nil only when n is 0.
func FromPtr[U Unit](p *U, n int) View[U, Ord[U]] {
	return View[U, Ord[U]]{s: unitmem.Window(p, n)}
}

// FromTerminated returns a view over the units before the zero terminator
// at p. Unlike the empty view, a nil source is rejected outright.
func FromTerminated[U Unit](p *U) View[U, Ord[U]] {
	if p == nil {
		panic("strview: FromTerminated: nil source")
	}
	return View[U, Ord[U]]{s: unitmem.Window(p, unitmem.ScanTerminated(p))}
}

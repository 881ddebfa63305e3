package unitmem

import "unsafe"

// Unit mirrors the root package's unit constraint so the helpers below can
// be instantiated for the same fixed-width code unit types.
type Unit interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// Size returns the byte width of one unit.
func Size[U Unit]() int {
	var u U
	return int(unsafe.Sizeof(u))
}

// Window aliases n units starting at p without copying.
// Caller owns the storage and must keep it alive for the window's lifetime.
func Window[U Unit](p *U, n int) []U {
	return unsafe.Slice(p, n)
}

// ScanTerminated returns the number of units before the zero terminator.
// p must point into a terminated sequence; a nil p is a caller bug.
func ScanTerminated[U Unit](p *U) int {
	n := 0
	for *p != 0 {
		n++
		p = (*U)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p)))
	}
	return n
}

// AsBytes reinterprets the unit slice as its raw bytes, sharing memory.
// The result must never be written to.
func AsBytes[U Unit](s []U) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*Size[U]())
}

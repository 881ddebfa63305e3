package strview

import "io"

// Sink receives a length-delimited unit buffer. Implementations must write
// exactly the units given, verbatim; no terminator is ever appended.
type Sink[U Unit] interface {
	WriteUnits(p []U) (int, error)
}

// WriteTo writes the view's window to s unit-by-unit and returns the count
// written. A short write with a nil error is reported as io.ErrShortWrite.
func WriteTo[U Unit, T Traits[U]](s Sink[U], v View[U, T]) (int, error) {
	n, err := s.WriteUnits(v.s)
	if err == nil && n != len(v.s) {
		err = io.ErrShortWrite
	}
	return n, err
}

// Write writes a byte-unit view to w verbatim.
func Write[T Traits[byte]](w io.Writer, v View[byte, T]) (int, error) {
	return w.Write(v.s)
}

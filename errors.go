package ppm

import "fmt"

// InvalidContainerError is returned when the input cannot be a PPM
// file at all: wrong magic, undersized buffer, or a header table that
// resolves outside the buffer. No partial result accompanies it.
type InvalidContainerError struct {
	Magic  []byte
	Length int
	Field  string
}

func (e *InvalidContainerError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("ppm: %s outside container bounds (length %d)", e.Field, e.Length)
	}
	return fmt.Sprintf("ppm: not a PPM container: magic %q, length %d", e.Magic, e.Length)
}

// TruncatedFrameError is returned when decoding a frame runs past the
// end of the buffer. Frames decoded before the failing one remain
// usable.
type TruncatedFrameError struct {
	Frame  int
	Offset int
}

func (e *TruncatedFrameError) Error() string {
	return fmt.Sprintf("ppm: frame %d truncated at offset %#x", e.Frame, e.Offset)
}

// OutOfRangeError is returned by accessors when the requested index
// exceeds what was decoded.
type OutOfRangeError struct {
	What  string
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("ppm: %s index %d out of range of %d", e.What, e.Index, e.Count)
}

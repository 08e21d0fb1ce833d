package domain

import "runtime"

// Zero overwrites a byte slice with zeros to clear sensitive data from memory.
//
// This is best-effort: the garbage collector may already have copied the buffer,
// and strings derived from it are immutable. It shortens the exposure window of a
// key; it does not prove erasure.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

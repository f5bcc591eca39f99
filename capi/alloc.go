package main

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// cCalloc allocates zeroed C memory for n items of the given size, panicking
// on exhaustion. The panic is converted to an error at the export boundary.
func cCalloc(n, size C.size_t) unsafe.Pointer {
	p := C.calloc(n, size)
	if p == nil {
		panic("out of memory")
	}
	return p
}

// cStringOrNil returns a C copy of s, or nil for the empty string.
func cStringOrNil(s string) *C.char {
	if s == "" {
		return nil
	}
	return C.CString(s)
}

// cFree releases C memory, tolerating nil.
func cFree(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

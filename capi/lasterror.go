package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"
)

// threadError is one thread's error slot: the Go message plus the C copy
// handed out by parquet_viewer_get_last_error.
type threadError struct {
	msg string
	c   *C.char
}

// Each OS thread gets its own error slot so concurrent callers never read
// each other's messages. A slot's string stays valid until the same thread's
// next failing call replaces it.
var (
	lastErrorMu sync.Mutex
	lastError   = make(map[uintptr]threadError)
)

// recordError stores err as the calling thread's last error, freeing any
// previous message for that thread.
func recordError(err error) {
	msg := err.Error()
	tid := currentThreadID()

	lastErrorMu.Lock()
	if old, ok := lastError[tid]; ok && old.c != nil {
		C.free(unsafe.Pointer(old.c))
	}
	lastError[tid] = threadError{msg: msg, c: C.CString(msg)}
	lastErrorMu.Unlock()
}

// recordPanic converts a recovered panic value into the error channel.
func recordPanic(r interface{}) {
	recordError(fmt.Errorf("internal error: %v", r))
}

// currentError returns the calling thread's last error message, or "" if the
// thread has not failed yet.
func currentError() string {
	tid := currentThreadID()

	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	return lastError[tid].msg
}

//export parquet_viewer_get_last_error
func parquet_viewer_get_last_error() *C.char {
	tid := currentThreadID()

	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	return lastError[tid].c
}

package main

/*
#include <pthread.h>
#include <stdint.h>

static uintptr_t pv_current_thread(void) {
	return (uintptr_t)pthread_self();
}
*/
import "C"

// currentThreadID identifies the calling OS thread. Callbacks from C run on
// the thread that made the call, so this keys the per-thread error slot.
func currentThreadID() uintptr {
	return uintptr(C.pv_current_thread())
}

// Package calltrace captures the current call chain as display text.
package calltrace

import (
	"fmt"
	"runtime"
	"strings"
)

// maxDepth bounds the number of frames collected per capture.
const maxDepth = 32

// Capture returns a human-readable trace of the calling context, one
// function per line with an indented file:line continuation. skip counts
// additional frames to drop beyond Capture itself; callers that wrap
// Capture pass the number of wrapper frames between them and the call
// site they want the trace to start at.
//
// The trace is debugging text only. It stops at runtime frames so the
// scheduler internals below main do not clutter the output.
func Capture(skip int) string {
	pcs := make([]uintptr, maxDepth)
	// +2 drops runtime.Callers and Capture.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function == "" || strings.HasPrefix(frame.Function, "runtime.") {
			break
		}
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

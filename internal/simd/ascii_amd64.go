//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// hasSSE2 is detected once at package init. SSE2 is baseline on amd64, but
// the word-oriented loop is still gated on a detected CPU feature
// (golang.org/x/sys/cpu.X86) rather than assumed unconditionally.
var hasSSE2 = cpu.X86.HasSSE2

//go:build !amd64

package simd

// hasSSE2 is always false off amd64; IsASCII falls back to the portable
// byte-at-a-time loop.
var hasSSE2 = false

// Package clipboard abstracts the operating environment's clipboards
// behind a small Provider interface with two kinds: the system clipboard
// and, where the platform has one, the primary selection.
//
// Concrete providers wrap the native copy/paste utilities (wl-clipboard,
// xclip, xsel, pbcopy/pbpaste), the portable atotto backend, or plain
// in-process storage as a last resort. Detect picks the best backend for
// the current environment at startup; callers that want a specific backend
// construct it directly.
//
// All calls are synchronous foreign calls with no timeout or cancellation.
// A slow or hung backend stalls the caller.
package clipboard

// Package register implements the named registers of a modal text editor:
// single-character storage locations that yank, delete, and paste operations
// read and write.
//
// Most names store arbitrary sets of values with a bounded history of yanks.
// A handful of names are special registers whose content is computed on
// demand or delegated to the system clipboard:
//   - '_' black hole: writes are discarded, reads are empty
//   - '#' selection indices, starting at 1
//   - '.' selection contents, in selection order
//   - '%' current document path
//   - '+' system clipboard
//   - '*' primary selection clipboard
//
// # Clipboard synchronization
//
// The '+' and '*' registers are backed by a clipboard.Provider, but also
// keep a local register as a cache. Writing joins the values with the
// platform's line ending and pushes the result to the OS clipboard; reading
// compares the OS clipboard against the cache and, when the two still
// agree, returns the cached values with their individual boundaries intact.
// This lets multi-selection yanks survive a round trip through the
// single-blob OS clipboard, while still treating external changes as
// authoritative: text another program placed on the clipboard is returned
// as a single opaque value.
//
// The OS clipboard is shared with the rest of the operating environment and
// can change at any time. The store never locks it; a push to a clipboard
// register instead re-reads the clipboard and fails with ErrClipboardStale
// if a third party has changed it since the last write.
//
// The Store is not safe for concurrent use. It is designed to be driven by
// the editor's single-threaded command loop.
package register

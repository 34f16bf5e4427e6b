package register

// ScratchBufferName is the placeholder path reported for a document that
// has no backing file.
const ScratchBufferName = "[scratch]"

// Context exposes the slice of editor state that special registers are
// computed from. Implementations are expected to reflect the currently
// focused view at the time of the call.
type Context interface {
	// SelectionCount returns the number of active selections.
	SelectionCount() int

	// SelectionContents returns the text under each active selection, in
	// selection order.
	SelectionContents() []string

	// DocumentPath returns the current document's path. It reports false
	// when the document has no backing file.
	DocumentPath() (string, bool)
}

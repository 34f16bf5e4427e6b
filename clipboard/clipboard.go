package clipboard

import "errors"

// Type identifies which OS clipboard a call targets.
type Type int

const (
	// TypeClipboard is the system clipboard, the one copy/paste shortcuts
	// use on every platform.
	TypeClipboard Type = iota

	// TypeSelection is the primary selection. Only some platforms (X11,
	// Wayland) have one.
	TypeSelection
)

// String returns the label used in log and error messages.
func (t Type) String() string {
	if t == TypeSelection {
		return "primary"
	}
	return "system"
}

// ErrUnsupportedType is returned by providers that cannot serve the
// requested clipboard kind on this platform.
var ErrUnsupportedType = errors.New("clipboard type not supported")

// Provider translates between in-process text and an OS clipboard.
type Provider interface {
	// Name identifies the backend for display.
	Name() string

	// GetContents returns the current contents of the given clipboard.
	GetContents(t Type) (string, error)

	// SetContents replaces the contents of the given clipboard.
	SetContents(contents string, t Type) error
}

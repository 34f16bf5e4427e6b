package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// systemProvider serves the system clipboard through the portable atotto
// backend. The primary selection is not available through it.
type systemProvider struct{}

// NewSystem returns the portable system-clipboard provider.
func NewSystem() Provider { return systemProvider{} }

func (systemProvider) Name() string { return "system" }

func (systemProvider) GetContents(t Type) (string, error) {
	if t != TypeClipboard {
		return "", fmt.Errorf("%s clipboard: %w", t, ErrUnsupportedType)
	}
	contents, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return contents, nil
}

func (systemProvider) SetContents(contents string, t Type) error {
	if t != TypeClipboard {
		return fmt.Errorf("%s clipboard: %w", t, ErrUnsupportedType)
	}
	if err := atotto.WriteAll(contents); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

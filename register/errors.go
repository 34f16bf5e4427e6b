package register

import "errors"

var (
	// ErrReadOnlyRegister is returned when writing or pushing to a special
	// register whose content is computed on demand.
	ErrReadOnlyRegister = errors.New("register is read-only")

	// ErrClipboardStale is returned by a push to a clipboard register when
	// the OS clipboard no longer matches the register's cached contents,
	// meaning another program changed it since the last write.
	ErrClipboardStale = errors.New("clipboard does not match register contents")
)

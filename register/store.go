package register

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/dshills/regstorm/clipboard"
	"github.com/dshills/regstorm/internal/logging"
)

// Store maps single-character names to registers and routes the special
// names. It is the surface the editor's yank, delete, and paste commands
// go through.
//
// The inner map holds ordinary registers plus the caches backing '+' and
// '*'. The other special names never appear as keys.
type Store struct {
	inner      map[rune]*Register
	provider   clipboard.Provider
	lineEnding string
	logger     *logging.Logger

	// LastSearchRegister is the register the most recent search pattern
	// was stored to.
	LastSearchRegister rune
}

// Option configures a Store at construction.
type Option func(*Store)

// WithLineEnding overrides the platform's native line ending used when
// joining register values into clipboard text.
func WithLineEnding(le string) Option {
	return func(s *Store) { s.lineEnding = le }
}

// WithLogger sets the logger clipboard failures are reported through.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates an empty store backed by the given clipboard provider.
// Use clipboard.Detect to pick a provider for the host platform, or
// clipboard.NewMemory for a store with no OS clipboard integration.
func New(provider clipboard.Provider, opts ...Option) *Store {
	s := &Store{
		inner:              make(map[rune]*Register),
		provider:           provider,
		lineEnding:         nativeLineEnding(),
		logger:             logging.GetLogger().WithComponent("register"),
		LastSearchRegister: '/',
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func nativeLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Read resolves name to a fresh value sequence. It reports false only when
// an ordinary name holds no values; special names always resolve. Reads
// never fail: a clipboard backend error is logged and read as empty.
func (s *Store) Read(name rune, ctx Context) (*Values, bool) {
	switch name {
	case '_':
		return newEmptyValues(), true
	case '#':
		count := ctx.SelectionCount()
		return newSynthValues(count, func(i int) string {
			return strconv.Itoa(i + 1)
		}), true
	case '.':
		return newSliceValues(ctx.SelectionContents()), true
	case '%':
		path, ok := ctx.DocumentPath()
		if !ok {
			path = ScratchBufferName
		}
		return newSingleValue(path), true
	case '+', '*':
		return s.readClipboard(name), true
	default:
		reg, ok := s.inner[name]
		if !ok {
			return nil, false
		}
		return reg.Values(), true
	}
}

// readClipboard returns the cached register's values when the OS clipboard
// still matches them, preserving individual value boundaries across the
// round trip. Otherwise the external content is authoritative and comes
// back as a single opaque value.
func (s *Store) readClipboard(name rune) *Values {
	t := clipboardType(name)
	contents, err := s.provider.GetContents(t)
	if err != nil {
		s.logger.Error("failed to read %s clipboard: %v", t, err)
		return newEmptyValues()
	}

	reg, ok := s.inner[name]
	if !ok {
		return newSingleValue(contents)
	}
	if contentsAreSaved(reg.Values(), contents, s.lineEnding) {
		return reg.Values()
	}
	return newSingleValue(contents)
}

// Write stores vals as one new yank under name. vals must be non-empty.
//
// Writing to a clipboard register updates the local cache first, then sets
// the OS clipboard to the values joined with the line ending; a backend
// failure is returned but leaves the cache updated.
func (s *Store) Write(name rune, vals []string) error {
	switch name {
	case '_':
		return nil
	case '#', '.', '%':
		return fmt.Errorf("register %c: %w", name, ErrReadOnlyRegister)
	case '+', '*':
		reg := s.register(name)
		reg.write(vals)
		joined := strings.Join(reg.Values().Collect(), s.lineEnding)
		if err := s.provider.SetContents(joined, clipboardType(name)); err != nil {
			return fmt.Errorf("register %c: set clipboard: %w", name, err)
		}
		return nil
	default:
		s.register(name).write(vals)
		return nil
	}
}

// Push appends value to the most recent yank under name.
//
// A push to a clipboard register depends on the clipboard's prior content,
// so it first re-reads the OS clipboard and fails with ErrClipboardStale,
// mutating nothing, if a third party changed it since the last write. On a
// match the value is appended to the cache and prepended to the external
// content.
func (s *Store) Push(name rune, value string) error {
	switch name {
	case '_':
		return nil
	case '#', '.', '%':
		return fmt.Errorf("register %c: %w", name, ErrReadOnlyRegister)
	case '+', '*':
		t := clipboardType(name)
		contents, err := s.provider.GetContents(t)
		if err != nil {
			return fmt.Errorf("register %c: get clipboard: %w", name, err)
		}

		reg := s.register(name)
		if !contentsAreSaved(reg.Values(), contents, s.lineEnding) {
			return fmt.Errorf("register %c: %w", name, ErrClipboardStale)
		}

		reg.push(value)
		if contents != "" {
			value += s.lineEnding
		}
		if err := s.provider.SetContents(value+contents, t); err != nil {
			return fmt.Errorf("register %c: set clipboard: %w", name, err)
		}
		return nil
	default:
		s.register(name).push(value)
		return nil
	}
}

// First returns the first value Read would yield for name.
func (s *Store) First(name rune, ctx Context) (string, bool) {
	vals, ok := s.Read(name, ctx)
	if !ok {
		return "", false
	}
	return vals.Next()
}

// Last returns the final value Read would yield for name.
func (s *Store) Last(name rune, ctx Context) (string, bool) {
	vals, ok := s.Read(name, ctx)
	if !ok {
		return "", false
	}
	return vals.NextBack()
}

// Clear empties every register and best-effort resets both OS clipboard
// kinds to empty content. Backend failures are logged, never returned:
// local state is always cleared.
func (s *Store) Clear() {
	s.clearClipboard(clipboard.TypeClipboard)
	s.clearClipboard(clipboard.TypeSelection)
	clear(s.inner)
}

// Remove deletes the register stored under name, reporting whether one
// existed. Removing a clipboard register also best-effort clears the
// backing OS clipboard and always reports true. The remaining special
// names cannot be removed.
func (s *Store) Remove(name rune) bool {
	switch name {
	case '+', '*':
		s.clearClipboard(clipboardType(name))
		delete(s.inner, name)
		return true
	case '_', '#', '.', '%':
		return false
	default:
		_, ok := s.inner[name]
		delete(s.inner, name)
		return ok
	}
}

// ClipboardProviderName reports which clipboard backend the store was
// constructed with.
func (s *Store) ClipboardProviderName() string {
	return s.provider.Name()
}

func (s *Store) clearClipboard(t clipboard.Type) {
	if err := s.provider.SetContents("", t); err != nil {
		s.logger.Error("failed to clear %s clipboard: %v", t, err)
	}
}

// register returns the register stored under name, creating it on first
// use.
func (s *Store) register(name rune) *Register {
	reg, ok := s.inner[name]
	if !ok {
		reg = &Register{}
		s.inner[name] = reg
	}
	return reg
}

func clipboardType(name rune) clipboard.Type {
	if name == '*' {
		return clipboard.TypeSelection
	}
	return clipboard.TypeClipboard
}

package clipboard

import (
	"fmt"
	"os/exec"
	"strings"
)

// command is one half of a command-backed clipboard: the executable and
// arguments that either paste (text on stdout) or copy (text on stdin).
type command struct {
	prog string
	args []string
}

func (c command) get() (string, error) {
	out, err := exec.Command(c.prog, c.args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.prog, err)
	}
	return string(out), nil
}

func (c command) set(contents string) error {
	cmd := exec.Command(c.prog, c.args...)
	cmd.Stdin = strings.NewReader(contents)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c.prog, err)
	}
	return nil
}

// commandProvider drives the platform's external copy/paste utilities.
// A kind with no configured command pair is unsupported.
type commandProvider struct {
	name string
	get  map[Type]command
	set  map[Type]command
}

func (p *commandProvider) Name() string { return p.name }

func (p *commandProvider) GetContents(t Type) (string, error) {
	cmd, ok := p.get[t]
	if !ok {
		return "", fmt.Errorf("%s clipboard: %w", t, ErrUnsupportedType)
	}
	return cmd.get()
}

func (p *commandProvider) SetContents(contents string, t Type) error {
	cmd, ok := p.set[t]
	if !ok {
		return fmt.Errorf("%s clipboard: %w", t, ErrUnsupportedType)
	}
	return cmd.set(contents)
}

// NewWlClipboard returns a provider backed by wl-copy and wl-paste,
// serving both clipboard kinds on Wayland.
func NewWlClipboard() Provider {
	return &commandProvider{
		name: "wl-clipboard",
		get: map[Type]command{
			TypeClipboard: {"wl-paste", []string{"--no-newline"}},
			TypeSelection: {"wl-paste", []string{"--primary", "--no-newline"}},
		},
		set: map[Type]command{
			TypeClipboard: {"wl-copy", nil},
			TypeSelection: {"wl-copy", []string{"--primary"}},
		},
	}
}

// NewXClip returns a provider backed by xclip, serving both clipboard
// kinds on X11.
func NewXClip() Provider {
	return &commandProvider{
		name: "xclip",
		get: map[Type]command{
			TypeClipboard: {"xclip", []string{"-o", "-selection", "clipboard"}},
			TypeSelection: {"xclip", []string{"-o"}},
		},
		set: map[Type]command{
			TypeClipboard: {"xclip", []string{"-i", "-selection", "clipboard"}},
			TypeSelection: {"xclip", []string{"-i"}},
		},
	}
}

// NewXSel returns a provider backed by xsel, serving both clipboard kinds
// on X11.
func NewXSel() Provider {
	return &commandProvider{
		name: "xsel",
		get: map[Type]command{
			TypeClipboard: {"xsel", []string{"-o", "-b"}},
			TypeSelection: {"xsel", []string{"-o", "-p"}},
		},
		set: map[Type]command{
			TypeClipboard: {"xsel", []string{"-i", "-b"}},
			TypeSelection: {"xsel", []string{"-i", "-p"}},
		},
	}
}

// NewPasteboard returns a provider backed by pbcopy and pbpaste on macOS.
// macOS has no primary selection; TypeSelection is unsupported.
func NewPasteboard() Provider {
	return &commandProvider{
		name: "pasteboard",
		get: map[Type]command{
			TypeClipboard: {"pbpaste", nil},
		},
		set: map[Type]command{
			TypeClipboard: {"pbcopy", nil},
		},
	}
}

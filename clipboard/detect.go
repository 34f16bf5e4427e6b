package clipboard

import (
	"os"
	"os/exec"
	"runtime"
)

// Detect picks the best clipboard backend for the current environment.
// Native command backends come first since they support the primary
// selection where the platform has one, then the portable system backend
// where it can work without those commands, then in-process storage.
func Detect() Provider {
	return detect(runtime.GOOS, os.Getenv, haveCommand)
}

func detect(goos string, getenv func(string) string, have func(string) bool) Provider {
	switch {
	case goos == "darwin" && have("pbcopy") && have("pbpaste"):
		return NewPasteboard()
	case getenv("WAYLAND_DISPLAY") != "" && have("wl-copy") && have("wl-paste"):
		return NewWlClipboard()
	case getenv("DISPLAY") != "" && have("xclip"):
		return NewXClip()
	case getenv("DISPLAY") != "" && have("xsel"):
		return NewXSel()
	case goos == "windows" || goos == "darwin":
		// The portable backend talks to these clipboards natively, with
		// no external commands required on Windows.
		return NewSystem()
	default:
		return NewMemory()
	}
}

func haveCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

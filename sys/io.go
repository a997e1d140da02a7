package sys

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const downloadsBasename = "Downloads"

// DownloadsDirectory resolves the user downloads folder, preferring
// the XDG user directory and falling back to ~/Downloads
func DownloadsDirectory() string {
	if xdg.UserDirs.Download != "" {
		return xdg.UserDirs.Download
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return downloadsBasename
	}
	return filepath.Join(home, downloadsBasename)
}

func AbsPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

package export

import (
	"log/slog"
	"os"
	"os/exec"
	"runtime"
)

// OpenFile hands path to the host's default application for its type. Inside
// a container there is no display to hand off to, so it just logs where the
// file landed.
func OpenFile(path string) error {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		slog.Info("running in a container, skipping open", "path", path)
		return nil
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Run()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Run()
	default:
		return exec.Command("xdg-open", path).Run()
	}
}

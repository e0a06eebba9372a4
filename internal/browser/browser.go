package browser

import (
	"log/slog"
	"os/exec"
	"runtime"
)

// Open asks the platform's default viewer to display the file at
// path. It is strictly fire-and-forget: the viewer process is not
// awaited and any launch failure is logged at debug level and
// otherwise swallowed, so callers' success never depends on it.
func Open(path string) {
	name, args := launcher(runtime.GOOS, path)
	if err := exec.Command(name, args...).Start(); err != nil {
		slog.Debug("browser: could not open file", "path", path, "err", err)
	}
}

func launcher(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		// rundll32 avoids cmd /c start shell interpretation of the path
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

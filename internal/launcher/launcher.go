// Package launcher opens resolved URLs in the user's browser.
package launcher

import (
	"os/exec"
	"strings"

	"github.com/pkg/browser"

	"miguel.build/cfurl/internal/errors"
	"miguel.build/cfurl/internal/logging"
)

// Launcher opens a URL in a browser.
type Launcher interface {
	Open(rawURL string) error
}

// Browser opens URLs with the system default browser, or with an
// override command when one is configured. The override is split on
// whitespace and the URL appended as the final argument.
type Browser struct {
	// Command is the override browser command; empty uses the system default
	Command string
}

// New returns a Browser launcher with the given override command.
func New(command string) *Browser {
	return &Browser{Command: strings.TrimSpace(command)}
}

// Open hands the URL to the browser. The launch is fire-and-forget:
// the browser process is started but never waited on, and failures are
// surfaced once, not retried.
func (b *Browser) Open(rawURL string) error {
	if b.Command == "" {
		logging.Debugf("opening %s with system browser", rawURL)
		if err := browser.OpenURL(rawURL); err != nil {
			return errors.Launcher(err)
		}
		return nil
	}

	argv := strings.Fields(b.Command)
	argv = append(argv, rawURL)

	logging.Debugf("opening %s with %q", rawURL, argv[0])
	cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec // argv comes from the user's own config
	if err := cmd.Start(); err != nil {
		return errors.Launcher(err)
	}

	// Detach so the browser outlives the CLI process.
	return cmd.Process.Release()
}

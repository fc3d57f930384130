// Package clipboard pipes snippet content to an external clipboard helper
// (yank on the target device). The helper is deliberately a subprocess fed on
// stdin rather than a native clipboard binding: on the target platform the
// helper is the only bridge to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrHelperNotFound reports that the helper program is not installed. Copying
// simply does not happen; the session continues.
var ErrHelperNotFound = errors.New("clipboard helper not found")

type Copier struct {
	// Helper is the program name or path, e.g. "yank".
	Helper string
}

func New(helper string) *Copier {
	return &Copier{Helper: helper}
}

// Copy feeds text to the helper's stdin and waits for it to exit.
func (c *Copier) Copy(text string) error {
	cmd := exec.Command(c.Helper)
	cmd.Stdin = strings.NewReader(text)

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrHelperNotFound, c.Helper)
		}
		return fmt.Errorf("clipboard: running %s: %w", c.Helper, err)
	}
	return nil
}

package cli

import (
	"fmt"
	"io"

	"github.com/xolan/worklog/internal/osutil"
)

const clearSequence = "\033[H\033[2J"

// ClearScreen returns a function that clears w. It returns nil when
// clearing is disabled or w is not a terminal, so piped output stays clean.
func ClearScreen(w io.Writer, enabled bool) func() {
	if !enabled || !osutil.IsTerminal(w) {
		return nil
	}
	return func() {
		_, _ = fmt.Fprint(w, clearSequence)
	}
}

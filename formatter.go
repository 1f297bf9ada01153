package cdpdoc

import (
	"strconv"
	"strings"
)

// FormatResult formats a result for terminal display.
// Ranked lines are numbered; a diagnostic is printed as-is.
func FormatResult(r *Result) string {
	msgs := r.Messages()
	if r.Outcome != OutcomeOK {
		return msgs[0]
	}

	parts := make([]string, 0, len(msgs))
	for i, msg := range msgs {
		parts = append(parts, strconv.Itoa(i+1)+". "+msg)
	}

	return strings.Join(parts, "\n")
}

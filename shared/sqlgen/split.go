package sqlgen

import (
	"errors"
	"fmt"
	"strings"
)

var ErrSeparatorCount = errors.New("unexpected separator count")

// Result is a generated SQL statement and its explanation.
type Result struct {
	SQLCode     string `json:"sqlCode"`
	Explanation string `json:"explanation"`
}

// Split cuts raw on Separator. Exactly one occurrence is required; both halves
// are trimmed of surrounding whitespace.
func Split(raw string) (Result, error) {
	parts := strings.Split(raw, Separator)
	if len(parts) != 2 {
		return Result{}, NewSplitError(fmt.Errorf("%w: expected 2 parts, got %d", ErrSeparatorCount, len(parts)))
	}

	return Result{
		SQLCode:     strings.TrimSpace(parts[0]),
		Explanation: strings.TrimSpace(parts[1]),
	}, nil
}

// StripMarkdownSQL removes a surrounding ``` fence, including any info string
// such as "sql" on the opening line.
func StripMarkdownSQL(value string) string {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 && !strings.ContainsAny(strings.TrimSpace(trimmed[:i]), " \t") {
		trimmed = trimmed[i+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}

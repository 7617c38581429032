package snapshot

import (
	"fmt"
	"strings"
)

const placeholderNameFormat = "Untitled %d"

// DisplayName returns the trimmed label, or a placeholder carrying the
// 1-based position when the label is blank.
func DisplayName(label string, position int) string {
	if name := strings.TrimSpace(label); name != "" {
		return name
	}
	return fmt.Sprintf(placeholderNameFormat, position)
}

package app

import (
	"fmt"
	"strings"

	"github.com/treykane/typewriter/internal/session"
)

// pageMetricsSummary is the compact W/C/L counter shown in the footer.
func (m *Model) pageMetricsSummary() string {
	if m.sess == nil {
		return ""
	}
	content := m.sess.Text()
	if strings.TrimSpace(content) == "" {
		return ""
	}
	metrics := session.ComputeMetrics(content)
	return fmt.Sprintf("W:%d C:%d L:%d", metrics.Words, metrics.Chars, metrics.Lines)
}

package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/treykane/cipher-nexus/internal/cipher"
)

type bufferMetrics struct {
	words   int
	chars   int
	letters int
}

func computeBufferMetrics(content string) bufferMetrics {
	if content == "" {
		return bufferMetrics{}
	}
	letters := 0
	for i := 0; i < len(content); i++ {
		if cipher.Index(content[i]) >= 0 {
			letters++
		}
	}
	return bufferMetrics{
		words:   len(strings.Fields(content)),
		chars:   utf8.RuneCountInString(content),
		letters: letters,
	}
}

// bufferMetricsSummary describes the plaintext buffer for the footer.
func (m *Model) bufferMetricsSummary() string {
	if strings.TrimSpace(m.state.plain) == "" {
		return ""
	}
	metrics := computeBufferMetrics(m.state.plain)
	return fmt.Sprintf("W:%d C:%d A-Z:%d", metrics.words, metrics.chars, metrics.letters)
}

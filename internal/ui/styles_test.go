package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDividerWidth(t *testing.T) {
	assert.Equal(t, "", Divider(0))
	assert.Equal(t, strings.Repeat("=", 10), SanitizeText(Divider(10)))
}

func TestStatusLinesCarryLabels(t *testing.T) {
	assert.Contains(t, Success("Server is running"), "✅ Server is running")
	assert.Contains(t, Failure("Error: %d", 404), "❌ Error: 404")
	assert.Contains(t, Warn("No doctors"), "No doctors")
	assert.Contains(t, Banner("DOCTOR CALL", 20), "DOCTOR CALL")
}

func TestDetailSanitizesValue(t *testing.T) {
	line := Detail("Message", "hi\x1b[31m\nthere")
	assert.Contains(t, line, "Message:")
	assert.Contains(t, line, "hi there")
}

func TestBannerTitleUsesPrimaryColor(t *testing.T) {
	assert.Equal(t, ColorPrimary, HeaderStyle.GetForeground())
	assert.Equal(t, ColorText, NormalStyle.GetForeground())
}

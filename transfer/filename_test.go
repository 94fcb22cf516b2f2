package transfer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileNames(t *testing.T) {
	assert.Equal(t, "fleetcheck-export-2026-10-19.json", FullExportName(time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "fleetcheck-check-2026-10-19.json", CheckExportName("2026-10-19"))
	assert.Equal(t, "fleetcheck-check-2026-10-19.txt", CheckTextName("2026-10-19"))
	assert.Equal(t, "fleetcheck-check-undated.txt", CheckTextName(""))
}

func TestSanitizeDate(t *testing.T) {
	assert.Equal(t, "2026-10-19", SanitizeDate("2026-10-19"))
	assert.Equal(t, "20261019", SanitizeDate("2026/10/19"))
	assert.Equal(t, "2026-10-19", SanitizeDate("../2026-10-19 "))
	assert.Equal(t, "undated", SanitizeDate("abc"))
}

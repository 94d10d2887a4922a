package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportMasksTokens(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cfg := fullConfig()
	report := cfg.Report()

	assert.NotContains(t, report, "storage-secret")
	assert.NotContains(t, report, "state-secret")
	assert.Contains(t, report, "********cret", "long tokens show only their last 4 characters")
	assert.Contains(t, report, "localhost:50051", "URLs are not secret and shown verbatim")
	assert.Contains(t, report, "run-42")
}

func TestReportDisabledService(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cfg := Config{State: StateConfig{Enabled: true, URL: "state:50051"}}
	report := cfg.Report()

	assert.Contains(t, report, "Storage\n  Enabled: no\n")
	assert.Contains(t, report, "Token:   (not set)")
}

package integration

import (
	"os"
	"strings"
	"testing"
)

// requireIntegration skips the test if NOTION_MCP_INTEGRATION is not set.
func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("NOTION_MCP_INTEGRATION") == "" {
		t.Skip("NOTION_MCP_INTEGRATION not set; skipping integration tests")
	}
}

// resolveEnv returns the first non-empty environment variable value from the
// provided keys.
func resolveEnv(keys ...string) string {
	for _, key := range keys {
		if val := os.Getenv(key); strings.TrimSpace(val) != "" {
			return val
		}
	}
	return ""
}

package middleware

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactJSONScrubsClientCredentials(t *testing.T) {
	raw := []byte(`{
		"client_id": "portal-web",
		"client_secret": "s3cret",
		"access_token": "eyJ...",
		"nested": {"password": "hunter2", "location": "B"}
	}`)

	var out map[string]any
	require.NoError(t, json.Unmarshal(redactJSON(raw), &out))

	assert.Equal(t, "portal-web", out["client_id"])
	assert.Equal(t, "***redacted***", out["client_secret"])
	assert.Equal(t, "***redacted***", out["access_token"])
	nested := out["nested"].(map[string]any)
	assert.Equal(t, "***redacted***", nested["password"])
	assert.Equal(t, "B", nested["location"])
}

func TestRedactJSONPassesNonJSONThrough(t *testing.T) {
	raw := []byte("client_id=portal-web&client_secret=s3cret")
	assert.Equal(t, raw, redactJSON(raw))
}

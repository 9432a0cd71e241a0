package config

import "testing"

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"http": map[string]any{
			"port": "8080",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"savedApi": map[string]any{
			"baseUrl": "",
			"token":   "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := map[string]string{
		// Keys whose camelCase form exists in the loaded file.
		"HTTP_PORT":                "http.port",
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"SAVEDAPI_BASEURL":         "savedApi.baseUrl",
		"SAVEDAPI_TOKEN":           "savedApi.token",
		"PUBSUB_TOPICID":           "pubsub.topicId",
		"SECRETKEY_ACCESS":         "secretKey.access",
		// Unknown keys fall back to plain lowercase segments.
		"NEW_FEATURE_FLAG": "new.feature.flag",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(envKey, existing); got != want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", envKey, got, want)
			}
		})
	}
}

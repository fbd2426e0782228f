package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"geocode": map[string]any{
			"maxSuggestions": 8,
			"google": map[string]any{
				"apiKey": "",
			},
		},
		"storage": map[string]any{
			"provider": "memory",
		},
		"backend": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GEOCODE_MAXSUGGESTIONS", want: "geocode.maxSuggestions"},
		{envKey: "GEOCODE_GOOGLE_APIKEY", want: "geocode.google.apiKey"},
		{envKey: "STORAGE_PROVIDER", want: "storage.provider"},
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

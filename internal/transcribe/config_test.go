package transcribe

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-x"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-x"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "whispercpp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("LEXISCREEN_TRANSCRIBE_PROVIDER", "")
	t.Setenv("LEXISCREEN_OPENAI_MODEL", "")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.Model != "whisper-1" {
		t.Errorf("OpenAI.Model = %q, want whisper-1", cfg.OpenAI.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("Retry.MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("LEXISCREEN_TRANSCRIBE_PROVIDER", "gemini")
	t.Setenv("LEXISCREEN_GEMINI_API_KEY", "g-key")
	t.Setenv("LEXISCREEN_GEMINI_MODEL", "gemini-pro")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Errorf("Gemini.APIKey = %q", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("Gemini.Model = %q", cfg.Gemini.Model)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("whisper", openaiModels); got != "whisper-1" {
		t.Errorf("resolveModel(whisper) = %q", got)
	}
	if got := resolveModel("custom-model", openaiModels); got != "custom-model" {
		t.Errorf("unknown models must pass through, got %q", got)
	}
}

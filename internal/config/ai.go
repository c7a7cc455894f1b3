package config

import "time"

// AIConfig holds the Ollama inference settings.
type AIConfig struct {
	// Host is the base URL of the Ollama server.
	Host string `json:"host"`

	// Model is the exact model tag to request.
	Model string `json:"model"`

	// Timeout bounds a single generation call end to end.
	Timeout time.Duration `json:"-"`

	// Temperature keeps the tribunal strict; low on purpose.
	Temperature float64 `json:"temperature"`

	// NumCtx must leave room for the embedded policy excerpt.
	NumCtx int `json:"numCtx"`
}

// DefaultAIConfig returns the default Ollama configuration.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		Host:        getEnvOrDefault("OLLAMA_HOST", "http://host.docker.internal:11434"),
		Model:       getEnvOrDefault("OLLAMA_MODEL", "llama3.1:8b-instruct-q4_K_M"),
		Timeout:     120 * time.Second,
		Temperature: 0.1,
		NumCtx:      4096,
	}
}

// GenerateURL returns the full non-streaming generation endpoint.
func (c *AIConfig) GenerateURL() string {
	return c.Host + "/api/generate"
}

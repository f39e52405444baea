package embedding

import (
	"fmt"

	"github.com/sutandi/asisten/internal/config"
)

// NewEmbedder creates the embedder selected by configuration.
func NewEmbedder(cfg config.EmbeddingConfig) (Embedder, error) {
	switch cfg.Provider {
	case "ollama":
		return NewOllamaEmbedder(OllamaConfig{BaseURL: cfg.URL, Model: cfg.Model}), nil
	case "lexical", "":
		return NewLexicalEmbedder(), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %q", cfg.Provider)
	}
}

package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"docassist/config"
	"docassist/internal/adapter/chunker"
	"docassist/internal/adapter/embedding"
	"docassist/internal/adapter/store"
	"docassist/internal/port"
	"docassist/internal/usecase"
)

// newEmbedder creates the configured embedding provider wrapped in a
// batching layer that drives a progress bar while chunks are embedded.
func newEmbedder(cfg *config.Config, showProgress bool) (port.Embedder, error) {
	var embedder port.Embedder
	var err error

	switch cfg.Embedding.Provider {
	case "openai":
		embedder, err = embedding.NewOpenAICompatibleEmbedder(cfg.Embedding.APIKeyEnv, cfg.Embedding.Model, cfg.Embedding.BaseURL)
	case "ollama":
		embedder, err = embedding.NewOllamaEmbedder(cfg.Embedding.Model, cfg.Embedding.BaseURL)
	case "hash":
		embedder = embedding.NewHashEmbedder(cfg.Embedding.Dimension)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Embedding.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	var progress func(done, total int)
	if showProgress {
		var bar *progressbar.ProgressBar
		progress = func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionEnableColorCodes(true),
					progressbar.OptionSetWidth(40),
					progressbar.OptionShowCount(),
					progressbar.OptionSetDescription("[cyan]Embedding[reset]"),
					progressbar.OptionOnCompletion(func() {
						fmt.Println()
					}),
				)
			}
			bar.Set(done)
		}
	}

	return embedding.NewBatchedEmbedder(embedder, cfg.Embedding.BatchSize, progress), nil
}

// newRetriever builds a retriever from the configured chunker and
// embedder, indexes text and reports whether anything was indexed.
func newRetriever(cfg *config.Config, text string, showProgress bool) (*usecase.Retriever, bool, error) {
	chk, err := chunker.NewSentenceChunker(cfg.Chunk.Size, cfg.Chunk.Overlap)
	if err != nil {
		return nil, false, err
	}

	embedder, err := newEmbedder(cfg, showProgress)
	if err != nil {
		return nil, false, err
	}

	retriever := usecase.NewRetriever(chk, embedder)
	indexed, err := retriever.IndexDocument(text)
	if err != nil {
		return nil, false, fmt.Errorf("indexing failed: %w", err)
	}

	return retriever, indexed, nil
}

// openStore opens the document store under the root directory.
func openStore() (*store.DocumentStore, error) {
	rootDir := GetRootDir()
	if err := config.EnsureDir(rootDir); err != nil {
		return nil, fmt.Errorf("failed to create .docassist directory: %w", err)
	}
	st, err := store.Open(config.StoreDBPath(rootDir))
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}
	return st, nil
}

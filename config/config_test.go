package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Chunk.Size != 400 {
		t.Errorf("expected Chunk.Size=400, got %d", cfg.Chunk.Size)
	}
	if cfg.Chunk.Overlap != 50 {
		t.Errorf("expected Chunk.Overlap=50, got %d", cfg.Chunk.Overlap)
	}
	if cfg.Retrieve.TopK != 3 {
		t.Errorf("expected TopK=3, got %d", cfg.Retrieve.TopK)
	}
	if cfg.Retrieve.MinSimilarity != 0.3 {
		t.Errorf("expected MinSimilarity=0.3, got %f", cfg.Retrieve.MinSimilarity)
	}
	if cfg.Embedding.Provider != "hash" {
		t.Errorf("expected Provider=hash, got %s", cfg.Embedding.Provider)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "docassist.yaml")

	content := `
chunk:
  size: 200
  overlap: 20
retrieve:
  top_k: 10
embedding:
  provider: openai
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Chunk.Size != 200 {
		t.Errorf("expected Chunk.Size=200, got %d", cfg.Chunk.Size)
	}
	if cfg.Chunk.Overlap != 20 {
		t.Errorf("expected Chunk.Overlap=20, got %d", cfg.Chunk.Overlap)
	}
	if cfg.Retrieve.TopK != 10 {
		t.Errorf("expected TopK=10, got %d", cfg.Retrieve.TopK)
	}
	if cfg.Embedding.Provider != "openai" {
		t.Errorf("expected Provider=openai, got %s", cfg.Embedding.Provider)
	}
	// Untouched fields keep their defaults.
	if cfg.Retrieve.MinSimilarity != 0.3 {
		t.Errorf("expected MinSimilarity=0.3, got %f", cfg.Retrieve.MinSimilarity)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "docassist.yaml")

	content := `
retrieve:
  top_k: 7
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Retrieve.TopK != 7 {
		t.Errorf("expected TopK=7, got %d", cfg.Retrieve.TopK)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "docassist.yaml")

	cfg := DefaultConfig()
	cfg.Chunk.Size = 123
	if err := cfg.Save(configPath); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Chunk.Size != 123 {
		t.Errorf("expected Chunk.Size=123 after round trip, got %d", loaded.Chunk.Size)
	}
}

func TestStoreDBPath(t *testing.T) {
	path := StoreDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".docassist", "documents.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}

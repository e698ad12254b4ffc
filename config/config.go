package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the docassist tool.
type Config struct {
	Chunk     ChunkConfig     `yaml:"chunk"`
	Retrieve  RetrieveConfig  `yaml:"retrieve"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Cache     CacheConfig     `yaml:"cache"`
	Ingest    IngestConfig    `yaml:"ingest"`
}

// ChunkConfig holds chunking configuration.
type ChunkConfig struct {
	Size    int `yaml:"size"`    // word budget per chunk
	Overlap int `yaml:"overlap"` // overlap budget in words
}

// RetrieveConfig holds retrieval configuration.
type RetrieveConfig struct {
	TopK          int     `yaml:"top_k"`
	MinSimilarity float64 `yaml:"min_similarity"` // hard relevance floor
}

// EmbeddingConfig holds embedding provider configuration.
type EmbeddingConfig struct {
	Provider  string `yaml:"provider"`    // "openai", "ollama", "hash"
	Model     string `yaml:"model"`       // e.g., "text-embedding-3-small"
	APIKeyEnv string `yaml:"api_key_env"` // environment variable for the API key
	BaseURL   string `yaml:"base_url"`    // override for OpenAI-compatible servers
	Dimension int    `yaml:"dimension"`   // used by the hash provider
	BatchSize int    `yaml:"batch_size"`
}

// CacheConfig holds search-result cache configuration.
type CacheConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxEntries int  `yaml:"max_entries"`
	TTLSeconds int  `yaml:"ttl_seconds"`
}

// IngestConfig holds file collection patterns for directory indexing.
type IngestConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Chunk: ChunkConfig{
			Size:    400,
			Overlap: 50,
		},
		Retrieve: RetrieveConfig{
			TopK:          3,
			MinSimilarity: 0.3,
		},
		Embedding: EmbeddingConfig{
			Provider:  "hash",
			Model:     "text-embedding-3-small",
			APIKeyEnv: "OPENAI_API_KEY",
			Dimension: 256,
			BatchSize: 100,
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 100,
			TTLSeconds: 300,
		},
		Ingest: IngestConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/vendor/**"},
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// docassist.yaml, then .docassist/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "docassist.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".docassist", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StoreDBPath returns the path to the document store database.
func StoreDBPath(dir string) string {
	return filepath.Join(dir, ".docassist", "documents.db")
}

// EnsureDir ensures the .docassist directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".docassist"), 0755)
}

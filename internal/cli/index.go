package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"docassist/internal/adapter/chunker"
	"docassist/internal/adapter/fs"
	"docassist/internal/domain"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Store a document for retrieval",
	Long: `Store a document under the current session, replacing any previously
stored document wholesale. A file is stored as-is; for a directory, all
matching text files are concatenated into one document.

Examples:
  docassist index report.txt
  docassist index ./docs -s contracts`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	cfg := GetConfig()

	var text string
	if info.IsDir() {
		walker := fs.NewWalker(cfg.Ingest.Includes, cfg.Ingest.Excludes)
		files, err := walker.Walk(path)
		if err != nil {
			return fmt.Errorf("failed to scan directory: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no matching files under %s", path)
		}
		text, err = fs.ReadAll(files)
		if err != nil {
			return fmt.Errorf("failed to read files: %w", err)
		}
		fmt.Printf("Collected %d files from %s\n", len(files), path)
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		text = string(data)
	}

	// Chunk up front so the stored document's stats are known without
	// spending embedding calls; embedding happens at query time.
	chk, err := chunker.NewSentenceChunker(cfg.Chunk.Size, cfg.Chunk.Overlap)
	if err != nil {
		return err
	}
	chunks, err := chk.Split(text)
	if err != nil {
		fmt.Println("Document contains nothing to index.")
		return nil
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	doc := domain.Document{
		Name:    filepath.Base(path),
		Text:    text,
		SavedAt: time.Now(),
	}
	if err := st.Put(session, doc); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}

	totalWords := 0
	for _, c := range chunks {
		totalWords += c.WordCount
	}

	fmt.Printf("Stored %q in session %q:\n", doc.Name, session)
	fmt.Printf("  Chunks:      %d\n", len(chunks))
	fmt.Printf("  Total words: %d\n", totalWords)
	return nil
}

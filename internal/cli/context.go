package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"docassist/internal/usecase"
)

var contextQuery string

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Build an LLM-ready context block for a query",
	Long: `Search the stored document and assemble the ranked results into a
labeled context block suitable for forwarding to a language model.

Example:
  docassist context -q "how is liability limited"`,
	RunE: runContext,
}

func init() {
	rootCmd.AddCommand(contextCmd)
	contextCmd.Flags().StringVarP(&contextQuery, "query", "q", "", "query to build context for (required)")
	contextCmd.MarkFlagRequired("query")
}

func runContext(cmd *cobra.Command, args []string) error {
	searcher, err := loadSearcher()
	if err != nil {
		return err
	}

	cfg := GetConfig()
	results, err := searcher.Search(contextQuery, cfg.Retrieve.TopK, cfg.Retrieve.MinSimilarity)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	block := usecase.AssembleContext(results)
	if block == "" {
		fmt.Println("No relevant context found.")
		return nil
	}

	fmt.Println(block)
	return nil
}

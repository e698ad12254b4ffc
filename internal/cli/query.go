package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"docassist/internal/adapter/cache"
	"docassist/internal/adapter/store"
	"docassist/internal/domain"
)

var (
	queryTexts  []string
	queryTopK   int
	queryMinSim float64
	queryJSON   bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search the stored document",
	Long: `Search the stored document for chunks similar to the query. The
document is re-chunked and re-embedded, then ranked by cosine
similarity with a top-k limit and a minimum-similarity floor.

Examples:
  docassist query -q "termination clause"
  docassist query -q "payment" -q "delivery" --top-k 5 --json`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringArrayVarP(&queryTexts, "query", "q", nil, "search query (repeatable)")
	queryCmd.Flags().IntVarP(&queryTopK, "top-k", "k", 0, "number of results (default from config)")
	queryCmd.Flags().Float64VarP(&queryMinSim, "min-similarity", "m", -1, "relevance floor (default from config)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output as JSON")
	queryCmd.MarkFlagRequired("query")
}

func runQuery(cmd *cobra.Command, args []string) error {
	searcher, err := loadSearcher()
	if err != nil {
		return err
	}

	topK, minSim := searchParams()

	for _, query := range queryTexts {
		results, err := searcher.Search(query, topK, minSim)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		printResults(query, results)
	}

	return nil
}

// loadSearcher loads the session document, rebuilds the in-memory index
// and wraps it in the result cache when enabled.
func loadSearcher() (cache.Searcher, error) {
	st, err := openStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	doc, err := st.Get(session)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("no document in session %q. Run 'docassist index' first", session)
		}
		return nil, err
	}

	cfg := GetConfig()
	retriever, indexed, err := newRetriever(cfg, doc.Text, true)
	if err != nil {
		return nil, err
	}
	if !indexed {
		return nil, fmt.Errorf("stored document in session %q contains nothing to index", session)
	}

	if !cfg.Cache.Enabled {
		return retriever, nil
	}

	searchCache := cache.NewSearchCache(cfg.Cache.MaxEntries, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	return cache.NewCachedSearcher(retriever, searchCache), nil
}

func searchParams() (int, float64) {
	cfg := GetConfig()
	topK := cfg.Retrieve.TopK
	if queryTopK > 0 {
		topK = queryTopK
	}
	minSim := cfg.Retrieve.MinSimilarity
	if queryMinSim >= 0 {
		minSim = queryMinSim
	}
	return topK, minSim
}

func printResults(query string, results []domain.SearchResult) {
	if queryJSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
		return
	}

	if len(results) == 0 {
		fmt.Printf("No results for: %s\n", query)
		return
	}

	fmt.Printf("Found %d results for: %s\n\n", len(results), query)
	for i, r := range results {
		fmt.Printf("--- [%d] position %d, %d words (relevance: %.2f) ---\n", i+1, r.Position, r.WordCount, r.Relevance)
		text := r.Text
		if len(text) > 500 {
			text = text[:500] + "..."
		}
		fmt.Println(text)
		fmt.Println()
	}
}

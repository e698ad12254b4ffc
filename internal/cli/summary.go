package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docassist/internal/adapter/store"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show index statistics for the stored document",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "output as JSON")
}

func runSummary(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	doc, err := st.Get(session)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no document in session %q. Run 'docassist index' first", session)
		}
		return err
	}

	retriever, _, err := newRetriever(GetConfig(), doc.Text, false)
	if err != nil {
		return err
	}

	summary := retriever.Summary()

	if summaryJSON {
		output, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Session %q (%s):\n", session, doc.Name)
	fmt.Printf("  Indexed:     %v\n", summary.Indexed)
	fmt.Printf("  Chunks:      %d\n", summary.ChunkCount)
	fmt.Printf("  Total words: %d\n", summary.TotalWords)
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsRemove string

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List or remove stored document sessions",
	RunE:  runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.Flags().StringVar(&sessionsRemove, "rm", "", "remove the named session")
}

func runSessions(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if sessionsRemove != "" {
		if err := st.Delete(sessionsRemove); err != nil {
			return fmt.Errorf("failed to remove session: %w", err)
		}
		fmt.Printf("Removed session %q\n", sessionsRemove)
		return nil
	}

	names, err := st.List()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(names) == 0 {
		fmt.Println("No stored sessions.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

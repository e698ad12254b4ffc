package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docassist/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	session string
)

var rootCmd = &cobra.Command{
	Use:   "docassist",
	Short: "Semantic document retrieval - index a document and query it by meaning",
	Long: `docassist splits a document into overlapping sentence-aware chunks,
embeds them and answers similarity queries against the resulting index.
Ranked results can be assembled into a bounded context block for LLM
consumption.

Example usage:
  docassist index report.txt           # Store and chunk a document
  docassist query -q "payment terms"   # Search the stored document
  docassist context -q "payment terms" # Build an LLM-ready context block
  docassist summary                    # Show index statistics`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./docassist.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVarP(&session, "session", "s", "default", "document session name")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

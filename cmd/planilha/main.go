package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planilha",
	Short: "Import and categorize pasted bank statement text",
	Long: `Planilha parses free-form statement text copied from a bank or card
app into transactions, assigns spending categories through keyword rules or
Gemini, and merges confirmed results into the transaction store.`,
	SilenceUsage: true,
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/industrylens/industrylens/internal/cli"
	"github.com/industrylens/industrylens/internal/llm"
)

func industriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "industries",
		Short: "List the labels each classifier can produce",
		RunE:  runIndustries,
	}

	cmd.Flags().Bool("llm", false, "list the canonical LLM label set instead of the keyword table")

	return cmd
}

func runIndustries(cmd *cobra.Command, _ []string) error {
	showLLM, _ := cmd.Flags().GetBool("llm")

	if showLLM {
		fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Canonical LLM labels (%d)", len(llm.AllowedIndustries))))
		for _, label := range llm.AllowedIndustries {
			fmt.Printf("  %s\n", label)
		}
		return nil
	}

	table, err := loadKeywordTable()
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Keyword industries (%d)", len(table.Entries()))))
	for _, entry := range table.Entries() {
		fmt.Printf("  %s %s\n",
			entry.Industry,
			cli.SubtleStyle.Render(fmt.Sprintf("(%d keywords)", len(entry.Keywords))))
	}

	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/industrylens/industrylens/internal/cli"
	"github.com/industrylens/industrylens/internal/model"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a single company",
		Long: `Classify one company from a name and optional free-text description.

Examples:
  industrylens classify --name "Acme Robotics" --description "industrial robotics and automation"
  industrylens classify --name ibm --description "Industry: information technology and services." --mode llm`,
		RunE: runClassify,
	}

	cmd.Flags().StringP("name", "n", "", "company name (required)")
	cmd.Flags().StringP("description", "d", "", "free-text company description")
	cmd.Flags().String("hint", "", "known industry label, forwarded as a few-shot hint in llm mode")
	cmd.Flags().StringP("mode", "m", "keyword", "classifier to use (keyword, llm)")
	_ = cmd.MarkFlagRequired("name")

	_ = viper.BindPFlag("classify.mode", cmd.Flags().Lookup("mode"))

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	hint, _ := cmd.Flags().GetString("hint")

	mode, err := resolveMode(viper.GetString("classify.mode"))
	if err != nil {
		return err
	}

	eng, adapter, err := buildEngine(ctx, mode)
	if err != nil {
		return err
	}
	warnDegradedLLM(mode, adapter)

	result, err := eng.ClassifyOne(ctx, mode, model.ClassificationInput{
		CompanyName:  name,
		Description:  description,
		IndustryHint: hint,
	})
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render(name))
	if result.IsError() {
		fmt.Println(cli.ErrorStyle.Render(fmt.Sprintf("  %s (confidence %.2f)", result.Label, result.Confidence)))
		return nil
	}

	fmt.Printf("  %s %s\n", cli.SubtleStyle.Render("industry:"), cli.SuccessStyle.Render(result.Label))
	fmt.Printf("  %s %.2f\n", cli.SubtleStyle.Render("confidence:"), result.Confidence)

	return nil
}

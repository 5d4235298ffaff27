package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planforge/internal/tui"
	"github.com/felixgeelhaar/planforge/internal/wizard"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Run the interactive plan wizard in the terminal",
	Long: `Run the five-step interview in the terminal and generate a marketing
growth plan from your answers.

Without an API credential the plan comes from the built-in playbook,
personalized with your business name and industry.

Example:
  # Run the wizard
  planforge wizard

  # Run the wizard and save the plan as JSON
  planforge wizard --output plan.json`,
	RunE: runWizard,
}

var wizardOutput string

func init() {
	wizardCmd.Flags().StringVarP(&wizardOutput, "output", "o", "", "Write the generated plan to a JSON file")

	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	synthesizer, _ := buildSynthesizer(cfg, logger)
	controller := wizard.NewController(synthesizer)

	generated, err := tui.Run(controller)
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	if generated == nil {
		// User quit before finishing; nothing to save.
		return nil
	}

	if wizardOutput != "" {
		data, err := json.MarshalIndent(generated, "", "  ")
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		if err := os.WriteFile(wizardOutput, data, 0o644); err != nil {
			return fmt.Errorf("write plan: %w", err)
		}
		fmt.Printf("Plan written to %s\n", wizardOutput)
	}

	return nil
}

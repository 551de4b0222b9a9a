package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"schnapsen/ml"
)

var (
	evaluateModelPath string
	evaluateStrategy  string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [observation logs...]",
	Short: "Classify recorded observation logs with a stored model",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := ml.LoadModel(evaluateModelPath)
		if err != nil {
			return err
		}
		strategy, err := ml.ParseStrategy(evaluateStrategy)
		if err != nil {
			return err
		}
		ds, err := ml.Assemble([]ml.Source{{Strategy: strategy, Paths: args}})
		if err != nil {
			return err
		}
		report, err := model.Evaluate(ds)
		if err != nil {
			return err
		}
		fmt.Printf("records: %d\n", ds.Len())
		fmt.Printf("accuracy against label %s: %.4f\n", strategy, report.Accuracy)
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateModelPath, "model", "m", "model.json", "stored model file")
	evaluateCmd.Flags().StringVarP(&evaluateStrategy, "strategy", "s", "", "true strategy the logs were recorded from")
	evaluateCmd.MarkFlagRequired("strategy")
}

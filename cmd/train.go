package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"schnapsen/ml"
)

var trainConfigPath string

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Assemble a dataset, fit the classifier, and store it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(trainConfigPath)
		if err != nil {
			return err
		}
		if cfg.Train.ModelPath == "" {
			return fmt.Errorf("config has no model_path")
		}
		sources, err := cfg.Sources()
		if err != nil {
			return err
		}

		ds, err := ml.Assemble(sources)
		if err != nil {
			return err
		}
		log.Info().Msgf("assembled %d records of dimension %d from %d sources", ds.Len(), ds.Dim(), len(sources))

		train, holdout, err := ml.Split(ds, ml.SplitConfig{
			HoldoutFraction: cfg.Train.HoldoutFraction,
			Seed:            cfg.Train.SplitSeed,
		})
		if err != nil {
			return err
		}
		log.Info().Msgf("split into %d training and %d holdout records", train.Len(), holdout.Len())

		model, err := ml.FitKNN(train, cfg.Train.Neighbors)
		if err != nil {
			return err
		}
		if holdout.Len() > 0 {
			report, err := model.Evaluate(holdout)
			if err != nil {
				return err
			}
			logReport(report)
		}

		if err := ml.SaveModel(cfg.Train.ModelPath, model); err != nil {
			return err
		}
		log.Info().Msgf("stored model at %s", cfg.Train.ModelPath)
		return nil
	},
}

func logReport(report *ml.Report) {
	log.Info().Msgf("holdout accuracy: %.4f", report.Accuracy)
	for _, s := range ml.Strategies() {
		metrics, ok := report.PerClass[s]
		if !ok {
			continue
		}
		log.Info().Msgf("  %s: precision=%.4f recall=%.4f support=%d",
			s, metrics.Precision, metrics.Recall, metrics.Support)
	}
}

func init() {
	trainCmd.Flags().StringVarP(&trainConfigPath, "config", "c", "pipeline.yaml", "pipeline configuration file")
}

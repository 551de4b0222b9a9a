package cmd

import (
	"github.com/spf13/cobra"

	"schnapsen/experiments"
)

var (
	playGames    int
	playBaseSeed uint64
	playOutDir   string
)

var playCmd = &cobra.Command{
	Use:   "play <strategy1> <strategy2>",
	Short: "Run a head-to-head series and test the win rate for significance",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bot1, err := newBot(args[0], playBaseSeed+1000)
		if err != nil {
			return err
		}
		bot2, err := newBot(args[1], playBaseSeed+2000)
		if err != nil {
			return err
		}

		name := args[0] + "-vs-" + args[1]
		result, err := experiments.RunMatchup(experiments.MatchupConfig{
			Name:     name,
			Games:    playGames,
			BaseSeed: playBaseSeed,
		}, bot1, bot2)
		if err != nil {
			return err
		}
		test, err := experiments.BinomialTest(result.Wins1, result.Games, 0.5)
		if err != nil {
			return err
		}

		writer, err := experiments.NewWriter(playOutDir, name)
		if err != nil {
			return err
		}
		if err := writer.WriteGameRecords(result); err != nil {
			return err
		}
		return writer.WriteSummary([]*experiments.MatchupResult{result}, []experiments.TestResult{test})
	},
}

func init() {
	playCmd.Flags().IntVarP(&playGames, "games", "n", 200, "number of games in the series")
	playCmd.Flags().Uint64Var(&playBaseSeed, "seed", 1, "base seed for dealing")
	playCmd.Flags().StringVarP(&playOutDir, "out", "o", "experiments", "directory for result CSVs")
	playCmd.Flags().IntVar(&rdeepSamples, "rdeep-samples", 8, "rollout samples per candidate move for the rdeep strategy")
	playCmd.Flags().IntVar(&rdeepDepth, "rdeep-depth", 6, "rollout depth in tricks for the rdeep strategy")
}

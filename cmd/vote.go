package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// voteCmd represents the vote command
var voteCmd = &cobra.Command{
	Use:   "vote <winnerId> <loserId>",
	Short: "Record a vote",
	Long:  `Applies one Elo update: the first Pokémon beat the second. Repeating the command counts again.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		winnerID, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid winner id %q: %w", args[0], err)
		}
		loserID, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid loser id %q: %w", args[1], err)
		}

		d, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.ranking.RecordVote(cmd.Context(), uint(winnerID), uint(loserID)); err != nil {
			return err
		}

		winner, err := d.ranking.Get(cmd.Context(), uint(winnerID))
		if err != nil {
			return err
		}
		loser, err := d.ranking.Get(cmd.Context(), uint(loserID))
		if err != nil {
			return err
		}
		fmt.Printf("%s: %.2f\n%s: %.2f\n", winner.Name, winner.Rating, loser.Name, loser.Rating)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(voteCmd)
}

package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
)

// pairCmd represents the pair command
var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Sample a pair of Pokémon",
	Long:  `Prints the two Pokémon the server would show for a seed. Without --seed a random seed is drawn.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		seed := rand.Float64()
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetFloat64("seed")
		}

		a, b, err := d.ranking.GetPair(cmd.Context(), seed)
		if err != nil {
			return err
		}

		fmt.Printf("Seed: %v\n", seed)
		fmt.Printf("A: #%d %s (id %d, rating %.2f)\n", a.DexID, a.Name, a.ID, a.Rating)
		fmt.Printf("B: #%d %s (id %d, rating %.2f)\n", b.DexID, b.Name, b.ID, b.Rating)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pairCmd)
	pairCmd.Flags().Float64("seed", 0, "Shuffle seed, usually in [0,1)")
}

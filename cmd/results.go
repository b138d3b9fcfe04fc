package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"roundest/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resultsCmd represents the results command
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print the leaderboard",
	Long:  `Prints every Pokémon ordered by rating, highest first. --export also writes the leaderboard to the bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		export, _ := cmd.Flags().GetBool("export")
		top, _ := cmd.Flags().GetInt("top")

		items, err := d.ranking.ListRanked(cmd.Context())
		if err != nil {
			return err
		}

		now := time.Now()
		if export {
			if err := d.requireStorage(); err != nil {
				return err
			}
			name, err := catalog.ExportLeaderboard(cmd.Context(), d.store, d.cfg.Storage, items, now)
			if err != nil {
				return err
			}
			d.logger.Info("Leaderboard exported", zap.String("bucket", d.cfg.Storage.Bucket), zap.String("object", name))
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(catalog.BuildExport(items, now))
		}

		shown := items
		if top > 0 && top < len(shown) {
			shown = shown[:top]
		}

		fmt.Println("\n=== Leaderboard ===")
		fmt.Printf("%-5s %-5s %-24s %9s\n", "Rank", "Dex", "Name", "Rating")
		for i, it := range shown {
			fmt.Printf("%-5d %-5d %-24s %9.2f\n", i+1, it.DexID, it.Name, it.Rating)
		}
		fmt.Printf("\nTotal Pokémon: %d\n", len(items))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(resultsCmd)
	resultsCmd.Flags().Bool("json", false, "Print the leaderboard as JSON")
	resultsCmd.Flags().Bool("export", false, "Write the leaderboard to the bucket")
	resultsCmd.Flags().Int("top", 0, "Only print the first N rows (0 prints all)")
}

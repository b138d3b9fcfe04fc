package cmd

import (
	"fmt"

	"roundest/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with Pokémon",
	Long: `Fetches every Pokémon up to catalog.max_dex_id from PokeAPI (or from a
snapshot in the bucket) and inserts them at the initial rating. Pokémon already
present are left untouched, so the command is safe to run again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		snapshot, _ := cmd.Flags().GetBool("snapshot")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		if source, _ := cmd.Flags().GetString("source"); source != "" {
			d.cfg.Catalog.Source = source
		}
		if snapshot {
			if err := d.requireStorage(); err != nil {
				return err
			}
		}

		src, err := catalog.NewSource(d.cfg.Catalog, d.store, d.cfg.Storage.Bucket)
		if err != nil {
			return err
		}

		seeder := catalog.NewSeeder(d.cfg.Catalog, src, d.ranking, d.store, d.cfg.Storage, d.logger)
		res, err := seeder.Seed(cmd.Context(), catalog.SeedOptions{Snapshot: snapshot, DryRun: dryRun})
		if err != nil {
			return err
		}

		fmt.Println("\n=== Seed Summary ===")
		fmt.Printf("Source: %s\n", res.Source)
		fmt.Printf("Fetched: %d\n", res.Fetched)
		fmt.Printf("Inserted: %d\n", res.Inserted)
		fmt.Printf("Already Present: %d\n", res.Skipped)
		fmt.Printf("Batches: %d\n", res.Batches)
		if res.Snapshot != "" {
			fmt.Printf("Snapshot: %s/%s\n", d.cfg.Storage.Bucket, res.Snapshot)
		}
		fmt.Printf("Execution Time: %s\n", res.Duration)

		d.logger.Debug("Seed finished", zap.Bool("dry_run", dryRun))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Bool("snapshot", false, "Store the fetched catalog in the bucket")
	seedCmd.Flags().Bool("dry-run", false, "Fetch the catalog without writing anything")
	seedCmd.Flags().String("source", "", "Override catalog.source (pokeapi or storage)")
}

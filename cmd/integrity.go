package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"roundest/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the ranking data",
	Long: `Checks the database schema, the vote log and the rating mass, plus the
catalog snapshot in the bucket when storage is enabled. Exits non-zero when a
check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		d, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		svc := integrity.NewService(d.db, d.store, d.cfg.Storage.Bucket, d.cfg.Catalog.Object, d.logger)
		report := svc.Run(cmd.Context())

		if jsonOutput {
			filename := fmt.Sprintf("integrity_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			d.logger.Info("Detailed JSON report saved", zap.String("file", filename))
		}

		fmt.Println("\n=== Integrity Report ===")
		for _, name := range []string{"schema", "votes", "ratings", "storage", "catalog"} {
			section := report.Checks[name]
			line := fmt.Sprintf("%-8s %s", name, section.Status)
			if section.Error != "" {
				line += " (" + section.Error + ")"
			}
			fmt.Println(line)
		}
		fmt.Printf("Execution Time: %s\n", time.Since(startTime))

		if !report.Healthy {
			return fmt.Errorf("integrity checks failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.Flags().Bool("json", false, "Save the detailed report as JSON")
}

package checks

import (
	"context"
	"fmt"

	"roundest/core/storage"
)

// StorageReport lists the required objects missing from the bucket.
type StorageReport struct {
	Bucket  string   `json:"bucket"`
	Missing []string `json:"missing"`
	Status  string   `json:"status"`
}

// CheckStorage verifies the bucket exists and holds every object in required.
func CheckStorage(ctx context.Context, client storage.Client, bucket string, required []string) (*StorageReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	report := &StorageReport{Bucket: bucket, Missing: []string{}, Status: "ok"}
	for _, name := range required {
		found, err := storage.ObjectExists(ctx, client, bucket, name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s: %w", name, err)
		}
		if !found {
			report.Missing = append(report.Missing, name)
			report.Status = "error"
		}
	}
	return report, nil
}

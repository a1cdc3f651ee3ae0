package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rubbishhaha/vocab/feature/mindmap/merge"
	"github.com/rubbishhaha/vocab/feature/mindmap/models"

	"github.com/spf13/cobra"
)

var mergeOutput string

// mergeCmd reconciles two snapshot files offline. Useful for inspecting
// what a sync would produce without touching the store.
var mergeCmd = &cobra.Command{
	Use:   "merge <remote.json> <local.json>",
	Short: "Merge two snapshot files and print the result",
	Long: `Merge two mind-map snapshot files the same way a sync would,
without reading or writing the store.

Examples:
  # Print the merged snapshot to stdout
  vocab merge stored.json pushed.json

  # Write the merged snapshot to a file
  vocab merge stored.json pushed.json -o merged.json`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Write the merged snapshot to a file instead of stdout")
	RootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	remote, err := readSnapshot(args[0])
	if err != nil {
		return err
	}
	local, err := readSnapshot(args[1])
	if err != nil {
		return err
	}

	merged := merge.Reconcile(remote, local, time.Now())

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode merged snapshot: %w", err)
	}

	if mergeOutput != "" {
		if err := os.WriteFile(mergeOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", mergeOutput, err)
		}
		fmt.Printf("Merged snapshot written to %s\n", mergeOutput)
		return nil
	}

	fmt.Println(string(data))
	return nil
}

func readSnapshot(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}

	return &snap, nil
}

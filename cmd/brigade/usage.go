package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func usageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show classification usage statistics",
		Long: `Aggregate the local usage log: how many requests were classified,
which occupations came up, and how often the enrichment fallback ran.`,
		RunE: runUsage,
	}

	cmd.Flags().Bool("json", false, "Print statistics as JSON")

	return cmd
}

func runUsage(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	stats, err := store.UsageStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read usage statistics: %w", err)
	}

	if asJSON {
		return printJSON(stats)
	}

	fmt.Printf("Requests classified: %d\n", stats.Total)
	fmt.Printf("Enrichment fallback: %d\n", stats.FallbackCount)

	if len(stats.ByOccupation) > 0 {
		fmt.Println("\nBy occupation:")

		keys := make([]string, 0, len(stats.ByOccupation))
		for key := range stats.ByOccupation {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			if stats.ByOccupation[keys[i]] != stats.ByOccupation[keys[j]] {
				return stats.ByOccupation[keys[i]] > stats.ByOccupation[keys[j]]
			}
			return keys[i] < keys[j]
		})

		for _, key := range keys {
			fmt.Printf("  %-24s %d\n", key, stats.ByOccupation[key])
		}
	}

	return nil
}

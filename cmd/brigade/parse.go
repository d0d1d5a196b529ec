package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nsellier/brigade/internal/engine"
	"github.com/nsellier/brigade/internal/model"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Classify a staffing request into a structured need",
		Long: `Run the classification pipeline over one free-text request and print
the structured result: occupations with confidence, role and direction,
context, and readiness.

The text is taken from the arguments, or from stdin when none are given.`,
		RunE: runParse,
	}

	cmd.Flags().Bool("json", false, "Print the parsed need as JSON")
	cmd.Flags().Bool("no-enrich", false, "Skip the enrichment fallback even when configured")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	noEnrich, _ := cmd.Flags().GetBool("no-enrich")

	text, err := inputText(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	usage := newUsageBuffer(store)
	defer usage.Close()

	cfg := engine.Config{Usage: usage}
	if !noEnrich {
		cfg.Enricher = newEnricher(ctx)
	}

	need, err := engine.New(cfg).Classify(ctx, text)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(need)
	}

	printNeed(need)
	return nil
}

// inputText joins the arguments, falling back to stdin for piped input.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	return strings.Join(lines, " "), nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printNeed(need *model.ParsedNeed) {
	fmt.Printf("Need %s\n", need.ID)
	fmt.Printf("  Text:      %s\n", need.RawText)

	if need.Primary != nil {
		fmt.Printf("  Occupation: %s (confidence %.2f)\n", need.Primary.Key, need.Primary.Confidence)
		for _, occ := range need.Occupations[1:] {
			fmt.Printf("    also: %s (confidence %.2f)\n", occ.Key, occ.Confidence)
		}
	} else {
		fmt.Println("  Occupation: not detected")
	}

	fmt.Printf("  Role:      %s (%s)\n", need.Role.Role, need.Direction)

	fmt.Printf("  Urgency:   %s\n", need.Context.Urgency)
	if need.Context.HasLocation() {
		fmt.Printf("  Location:  %s\n", need.Context.Location)
	}
	if need.Context.Duration != "" {
		fmt.Printf("  Duration:  %s\n", need.Context.Duration)
	}
	if need.Context.Temporal != "" {
		fmt.Printf("  When:      %s\n", need.Context.Temporal)
	}

	fmt.Printf("  Readiness: %s (%d/100)\n", need.Readiness.Status, need.Readiness.Score)
	if len(need.Readiness.MissingFields) > 0 {
		fmt.Printf("    missing: %s\n", strings.Join(need.Readiness.MissingFields, ", "))
	}
	if need.UsedFallback {
		fmt.Println("  Enriched:  yes")
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nsellier/brigade/internal/engine"
	"github.com/nsellier/brigade/internal/match"
	"github.com/nsellier/brigade/internal/model"
)

func matchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match [text]",
		Short: "Build a full staffing proposal for a request",
		Long: `Run the whole pipeline over one free-text request: classify the need,
draft a listing, rank matching candidates from the talent pool, and print
the resulting proposal.`,
		RunE: runMatch,
	}

	cmd.Flags().Bool("json", false, "Print the proposal as JSON")
	cmd.Flags().Bool("no-enrich", false, "Skip the enrichment fallback even when configured")
	cmd.Flags().Int("limit", 0, "Maximum number of candidates (default 10)")
	cmd.Flags().Float64("min-score", 0, "Drop candidates scoring below this value")
	cmd.Flags().String("mode", "", "Scoring mode: baseline or weighted")
	cmd.Flags().Bool("include-inactive", false, "Consider deactivated profiles too")

	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
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

	opts := matchOptionsFromConfig()
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
		opts.Limit = limit
	}
	if minScore, _ := cmd.Flags().GetFloat64("min-score"); minScore > 0 {
		opts.MinScore = minScore
	}
	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		opts.Mode = match.ScoringMode(mode)
	}
	if includeInactive, _ := cmd.Flags().GetBool("include-inactive"); includeInactive {
		opts.IncludeInactive = true
	}

	cfg := engine.Config{
		Matcher:      match.New(store),
		Usage:        usage,
		MatchOptions: opts,
	}
	if !noEnrich {
		cfg.Enricher = newEnricher(ctx)
	}

	proposal, err := engine.New(cfg).Process(ctx, text)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(proposal)
	}

	printProposal(proposal)
	return nil
}

func printProposal(proposal *model.Proposal) {
	printNeed(proposal.Need)

	fmt.Printf("\nDraft (%s)\n", proposal.Draft.Source)
	fmt.Printf("  %s\n", proposal.Draft.Title)
	fmt.Printf("  %s\n", proposal.Draft.Description)

	fmt.Printf("\nCandidates (%d)\n", len(proposal.Matches))
	for i, m := range proposal.Matches {
		fmt.Printf("  %d. %s — score %.2f, %s\n", i+1, m.Talent.Name, m.Score, m.Availability)
		if len(m.Reasons) > 0 {
			fmt.Printf("     %s\n", strings.Join(m.Reasons, "; "))
		}
	}
	if len(proposal.Matches) == 0 {
		fmt.Println("  none")
	}

	fmt.Printf("\nConfidence:   %.2f\n", proposal.Confidence)
	fmt.Printf("Time to fill: %s\n", proposal.TimeToFill)

	fmt.Println("Next steps:")
	for _, action := range proposal.SuggestedActions {
		fmt.Printf("  - %s\n", action)
	}
}

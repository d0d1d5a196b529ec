package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nsellier/brigade/internal/model"
)

func talentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "talents",
		Short: "Manage the local talent pool",
	}

	cmd.AddCommand(talentsAddCmd())
	cmd.AddCommand(talentsListCmd())
	cmd.AddCommand(talentsSeedCmd())

	return cmd
}

func talentsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a talent profile to the pool",
		RunE:  runTalentsAdd,
	}

	cmd.Flags().String("name", "", "Display name (required)")
	cmd.Flags().StringSlice("occupations", nil, "Occupation keys, comma-separated (required)")
	cmd.Flags().String("city", "", "Home city (required)")
	cmd.Flags().String("available-from", "", "Earliest availability, YYYY-MM-DD (default: now)")
	cmd.Flags().Float64("rating", 0, "Average rating out of 5")
	cmd.Flags().Float64("hourly-min", 0, "Minimum hourly rate")
	cmd.Flags().Float64("hourly-max", 0, "Maximum hourly rate")
	cmd.Flags().Bool("inactive", false, "Create the profile deactivated")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("occupations")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}

func runTalentsAdd(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("name")
	occupations, _ := cmd.Flags().GetStringSlice("occupations")
	city, _ := cmd.Flags().GetString("city")
	availableFrom, _ := cmd.Flags().GetString("available-from")
	inactive, _ := cmd.Flags().GetBool("inactive")

	talent := &model.TalentProfile{
		Name:        name,
		Occupations: occupations,
		City:        city,
		Active:      !inactive,
	}

	if availableFrom != "" {
		t, err := time.Parse("2006-01-02", availableFrom)
		if err != nil {
			return fmt.Errorf("invalid --available-from date: %w", err)
		}
		talent.AvailableFrom = &t
	}

	if rating, _ := cmd.Flags().GetFloat64("rating"); rating > 0 {
		talent.Rating = &rating
	}
	if hourlyMin, _ := cmd.Flags().GetFloat64("hourly-min"); hourlyMin > 0 {
		talent.HourlyMin = &hourlyMin
	}
	if hourlyMax, _ := cmd.Flags().GetFloat64("hourly-max"); hourlyMax > 0 {
		talent.HourlyMax = &hourlyMax
	}

	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveTalent(ctx, talent); err != nil {
		return fmt.Errorf("failed to save talent: %w", err)
	}

	slog.Info("✅ Talent saved", "id", talent.ID, "name", talent.Name)
	return nil
}

func talentsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every profile in the pool",
		RunE:  runTalentsList,
	}

	cmd.Flags().Bool("json", false, "Print profiles as JSON")

	return cmd
}

func runTalentsList(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	talents, err := store.ListTalents(ctx)
	if err != nil {
		return fmt.Errorf("failed to list talents: %w", err)
	}

	if asJSON {
		return printJSON(talents)
	}

	if len(talents) == 0 {
		fmt.Println("No talent profiles yet. Try: brigade talents seed")
		return nil
	}

	for _, talent := range talents {
		status := "active"
		if !talent.Active {
			status = "inactive"
		}
		fmt.Printf("%s  %-24s %-16s %-10s %s\n",
			talent.ID, talent.Name, talent.City, status,
			strings.Join(talent.Occupations, ","))
	}
	fmt.Printf("\n%d profile(s)\n", len(talents))

	return nil
}

func talentsSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a small sample talent pool for trying things out",
		RunE:  runTalentsSeed,
	}
}

func runTalentsSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	now := time.Now().UTC()
	nextWeek := now.AddDate(0, 0, 7)

	for _, talent := range sampleTalents(now, nextWeek) {
		t := talent
		if err := store.SaveTalent(ctx, &t); err != nil {
			return fmt.Errorf("failed to seed talent %q: %w", t.Name, err)
		}
	}

	slog.Info("✅ Sample talent pool loaded")
	return nil
}

func sampleTalents(now, nextWeek time.Time) []model.TalentProfile {
	rate := func(v float64) *float64 { return &v }

	return []model.TalentProfile{
		{Name: "Karim Benali", Occupations: []string{"server", "bartender"}, City: "Lille", Active: true, AvailableFrom: &now, Rating: rate(4.7)},
		{Name: "Sophie Durand", Occupations: []string{"server"}, City: "Lille", Active: true, Rating: rate(4.2)},
		{Name: "Marc Lefebvre", Occupations: []string{"server", "runner"}, City: "Lille", Active: true, AvailableFrom: &nextWeek, Rating: rate(4.9)},
		{Name: "Fatima Zahraoui", Occupations: []string{"cook", "kitchen_porter"}, City: "Paris", Active: true, AvailableFrom: &now, Rating: rate(4.8)},
		{Name: "Julien Moreau", Occupations: []string{"cook"}, City: "Paris", Active: false, Rating: rate(3.9)},
		{Name: "Amadou Diallo", Occupations: []string{"mason", "site_laborer"}, City: "Marseille", Active: true, AvailableFrom: &now, Rating: rate(4.5)},
		{Name: "Claire Petit", Occupations: []string{"housekeeper"}, City: "Lyon", Active: true, Rating: rate(4.6)},
		{Name: "Nadia Mansouri", Occupations: []string{"forklift_operator", "warehouse_worker"}, City: "Lille", Active: true, AvailableFrom: &now, Rating: rate(4.3)},
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stitts-dev/caddie/internal/fixtures"
	"github.com/stitts-dev/caddie/internal/models"
	"github.com/stitts-dev/caddie/internal/recommendation"
	"github.com/stitts-dev/caddie/internal/validation"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <scenario.yaml>",
	Short: "Recommend a club for a scenario file",
	Long:  "Loads a scenario (player, course, hole, weather and shot) and prints the caddie recommendation.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		threshold, _ := cmd.Flags().GetInt("measured-threshold")
		return runRecommend(cmd.OutOrStdout(), args[0], format, threshold)
	},
}

func init() {
	recommendCmd.Flags().String("format", "text", "output format (text, json)")
	recommendCmd.Flags().Int("measured-threshold", 8, "measured clubs needed for full player data quality")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(out io.Writer, path, format string, threshold int) error {
	scenario, err := fixtures.LoadScenario(path)
	if err != nil {
		return err
	}
	resolved, err := scenario.Resolve()
	if err != nil {
		return fmt.Errorf("resolve scenario %s: %w", path, err)
	}
	if err := validation.Baseline(&resolved.Baseline); err != nil {
		return err
	}
	if err := validation.Shot(&resolved.Shot); err != nil {
		return err
	}

	engine := recommendation.NewEngine(recommendation.WithMeasuredClubThreshold(threshold))
	rec, err := engine.Recommend(recommendation.Input{
		Baseline: resolved.Baseline,
		Hole:     resolved.Hole,
		Weather:  resolved.Weather,
		Shot:     resolved.Shot,
	})
	if err != nil {
		return err
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"scenario": scenario.Name,
			"club":     rec.Primary.Club,
			"fallback": rec.Fallback,
		}).Debug("Recommendation complete")
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "text", "":
		writeRecommendation(out, scenario.Name, rec)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeRecommendation(out io.Writer, name string, rec *models.CaddieRecommendation) {
	if name != "" {
		fmt.Fprintf(out, "%s\n%s\n", name, strings.Repeat("=", len(name)))
	}
	p := rec.Primary
	fmt.Fprintf(out, "Club:       %s (%s)\n", p.ClubName, p.Club)
	fmt.Fprintf(out, "Target:     %s\n", p.TargetArea)
	fmt.Fprintf(out, "Expected:   %.1f carry / %.1f total (+/- %.1f)\n", p.CarryYards, p.TotalYards, p.DispersionYards)
	fmt.Fprintf(out, "Confidence: %d%%\n", p.ConfidencePercent)
	if rec.Fallback {
		fmt.Fprintln(out, "Note:       no club reaches, closest option shown")
	}
	fmt.Fprintf(out, "\n%s\n", rec.CaddieCall)

	if len(rec.Adjustments.Summary) > 0 {
		fmt.Fprintln(out, "\nAdjustments:")
		for _, line := range rec.Adjustments.Summary {
			fmt.Fprintf(out, "  - %s\n", line)
		}
	}
	if len(rec.Hazards.HazardsInPlay) > 0 {
		fmt.Fprintln(out, "\nHazards:")
		for _, hz := range rec.Hazards.HazardsInPlay {
			fmt.Fprintf(out, "  - %s %s at %.0f yards (%s risk)\n", hz.Type, hz.Location, hz.DistanceFromBall, hz.Risk)
		}
	}
	if len(rec.Alternatives) > 0 {
		fmt.Fprintln(out, "\nAlternatives:")
		for _, alt := range rec.Alternatives {
			fmt.Fprintf(out, "  - %s: %s\n", alt.ClubName, alt.Scenario)
		}
	}
	fmt.Fprintf(out, "\nMiss: %s\n", rec.OptimalMiss)
}

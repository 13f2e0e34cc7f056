package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stitts-dev/caddie/internal/fixtures"
	"github.com/stitts-dev/caddie/internal/store"
	"github.com/stitts-dev/caddie/internal/validation"
)

var validateCourseCmd = &cobra.Command{
	Use:   "validate-course [dir]",
	Short: "Check course fixture files",
	Long:  "Loads every course file in dir, validates each hole and prints the data quality report.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "fixtures"
		if len(args) == 1 {
			dir = args[0]
		}
		strict, _ := cmd.Flags().GetBool("strict")
		return runValidateCourses(cmd.OutOrStdout(), dir, strict)
	},
}

func init() {
	validateCourseCmd.Flags().Bool("strict", false, "fail when any course has data quality issues")
	rootCmd.AddCommand(validateCourseCmd)
}

func runValidateCourses(out io.Writer, dir string, strict bool) error {
	courses, err := fixtures.LoadCourses(dir)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		return fmt.Errorf("no course files in %s", dir)
	}

	dirty := 0
	for _, c := range courses {
		for i := range c.Holes {
			if err := validation.Hole(&c.Holes[i]); err != nil {
				return fmt.Errorf("course %s hole %d: %w", c.ID, c.Holes[i].Number, err)
			}
		}

		report := store.CheckCourse(c)
		if report.Clean() {
			fmt.Fprintf(out, "%-20s %2d holes  ok\n", c.ID, report.HoleCount)
			continue
		}
		dirty++
		fmt.Fprintf(out, "%-20s %2d holes  %d issue(s)\n", c.ID, report.HoleCount, len(report.Issues))
		for _, issue := range report.Issues {
			fmt.Fprintf(out, "    %s: %s\n", issue.Kind, issue.Message)
		}
	}

	if strict && dirty > 0 {
		return fmt.Errorf("%d course(s) with data quality issues", dirty)
	}
	return nil
}

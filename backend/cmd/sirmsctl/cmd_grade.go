package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sirms/backend/internal/grade"
)

func newGradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grade <score>...",
		Short: "Convert raw scores to grade points and letters",
		Example: `  sirmsctl grade 75 62 39.99`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SCORE\tPOINT\tGRADE")
			for _, arg := range args {
				score, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid score %q: %w", arg, err)
				}
				point, letter := grade.CalculateGrade(score)
				fmt.Fprintf(tw, "%s\t%.1f\t%s\n", arg, point, letter)
			}
			return tw.Flush()
		},
	}
}

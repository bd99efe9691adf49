package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "sirms/backend/internal/pb/records"
	"sirms/backend/internal/shared"
)

// adminActor is the identity sirmsctl acts as. The CLI is an operator tool
// that reaches the Records Service directly, never through the gateway.
var adminActor = &pb.Actor{Role: string(shared.RoleAdmin)}

// withClient dials the Records Service and runs fn with a timeout-bound context.
func withClient(cmd *cobra.Command, opts *cliOptions, fn func(ctx context.Context, client pb.RecordServiceClient) error) error {
	opts.logger.Debug("dialing records service", zap.String("addr", opts.addr))
	conn, err := grpc.NewClient(opts.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connect to %s: %w", opts.addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()
	return fn(ctx, pb.NewRecordServiceClient(conn))
}

func newStudentsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List every student record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, opts, func(ctx context.Context, client pb.RecordServiceClient) error {
				resp, err := client.ListStudents(ctx, &pb.ListStudentsRequest{Actor: adminActor})
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tLEVEL\tDEPARTMENT\tCOURSES")
				for _, s := range resp.Students {
					courses := 0
					for _, l := range s.Results {
						courses += len(l.Courses)
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", s.Id, s.Name, s.Level, s.Department, courses)
				}
				return tw.Flush()
			})
		},
	}
}

func newTranscriptCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "transcript <id>",
		Short:   "Show per-level GPA and CGPA for one student",
		Example: `  sirmsctl transcript 2024/001`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, opts, func(ctx context.Context, client pb.RecordServiceClient) error {
				resp, err := client.GetTranscript(ctx, &pb.GetTranscriptRequest{Actor: adminActor, Id: args[0]})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s  %s  (%s, %s)\n\n", resp.Student.Id, resp.Student.Name, resp.Student.Level, resp.Student.Department)

				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "LEVEL\tCOURSES\tUNITS\tGPA")
				for _, l := range resp.Summary.Levels {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\n", l.Level, l.Courses, l.Units, l.Gpa)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nCGPA: %.2f\n", resp.Summary.Cgpa)
				return nil
			})
		},
	}
}

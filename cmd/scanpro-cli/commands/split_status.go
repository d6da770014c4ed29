package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scanpro/internal/core/domain"
	"scanpro/internal/service"
)

// NewSplitStatusCommand returns the command that queries an asynchronous split job.
func NewSplitStatusCommand(rootCmd *RootCommand) *cobra.Command {
	var (
		wait     bool
		interval time.Duration
		download bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "split-status JOB_ID",
		Short: "Get the status of an asynchronous split job.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			jobID := args[0]
			if wait && interval <= 0 {
				return fmt.Errorf("--interval must be positive, got %s", interval)
			}

			p, err := rootCmd.newPrinter()
			if err != nil {
				return err
			}
			client := rootCmd.newClient()

			var status domain.Result[domain.SplitStatus]
			if wait {
				runner := rootCmd.newRunner()
				status = runner.WaitSplit(ctx, jobID, interval, func(s domain.SplitStatus) {
					rootCmd.Logger.Infof("Split job %s is %s (%d%%)", jobID, s.Status, s.Progress)
				})
			} else {
				status = client.CheckSplitStatus(ctx, jobID)
			}

			st, ok := status.Data()
			if !ok {
				return fmt.Errorf("%w: %s", ErrOperationFailed, status.Err())
			}
			if err := p.PrintSplitStatus(st); err != nil {
				return fmt.Errorf("could not print status: %w", err)
			}

			if download && st.Status == domain.SplitStatusCompleted && st.FileURL != "" {
				name := output
				if name == "" {
					name = jobID + "-split.zip"
				}
				storage := rootCmd.newStorage()
				if !client.DownloadFile(ctx, st.FileURL, name, storage) {
					return fmt.Errorf("%s", rootCmd.Translator.T("common.downloadFailed"))
				}
				return p.PrintMessage(fmt.Sprintf("%s: %s", rootCmd.Translator.T("common.downloaded"), storage.PathFor(name)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until the job has finished.")
	cmd.Flags().DurationVar(&interval, "interval", service.DefaultSplitPollInterval, "Polling interval used with --wait.")
	cmd.Flags().BoolVar(&download, "download", false, "Download the result once the job has completed.")
	cmd.Flags().StringVar(&output, "output-name", "", "Filename of the downloaded result.")

	return cmd
}

package main

import (
	"context"
	"fmt"

	"sysmayal-backend/internal/app"

	"github.com/spf13/cobra"
)

// tasksCmd groups the maintenance job commands
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List and run maintenance jobs",
}

// tasksListCmd lists the registered maintenance jobs
var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List maintenance jobs and their schedules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			return printJSON(cmd, a.Scheduler.Jobs())
		})
	},
}

// tasksRunCmd runs one maintenance job synchronously
var tasksRunCmd = &cobra.Command{
	Use:   "run NAME",
	Short: "Run a maintenance job now",
	Long: `Run a maintenance job synchronously. Jobs:
  check_certification_expiry
  update_compliance_status
  generate_compliance_reports
  archive_old_documents`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if err := a.Scheduler.RunNow(ctx, name); err != nil {
				return fmt.Errorf("task %s failed: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s completed\n", name)
			return nil
		})
	},
}

func init() {
	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksRunCmd)
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/ergo/internal/adapter"
	"github.com/MKhiriev/ergo/models"
	"github.com/spf13/cobra"
)

func tasksCmd(api adapter.APIClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
		Long: `Manage tasks.

Examples:
  ergo tasks list --status in-progress --tag <tag id>
  ergo tasks add "Pay rent" --date 1767225600
  ergo tasks add "Gym" --weekly MONDAY@0730 --weekly THURSDAY@1900
  ergo tasks done <task id> --date 2026-03-14
  ergo tasks rm <task id>`,
	}

	cmd.AddCommand(
		tasksListCmd(api),
		tasksAddCmd(api),
		tasksDoneCmd(api),
		tasksUndoCmd(api),
		tasksRmCmd(api),
	)

	return cmd
}

func tasksListCmd(api adapter.APIClient) *cobra.Command {
	var (
		filter   models.TaskFilter
		status   string
		from, to int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.Status = models.TaskStatus(status)
			if cmd.Flags().Changed("from") {
				filter.From = &from
			}
			if cmd.Flags().Changed("to") {
				filter.To = &to
			}

			tasks, err := api.ListTasks(cmd.Context(), filter)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTasks(tasks))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&filter.TagIDs, "tag", nil, "keep tasks carrying this tag (repeatable)")
	cmd.Flags().StringVar(&status, "status", "", `"completed" or "in-progress"`)
	cmd.Flags().Int64Var(&from, "from", 0, "earliest due date, unix seconds")
	cmd.Flags().Int64Var(&to, "to", 0, "latest due date, unix seconds")

	return cmd
}

func tasksAddCmd(api adapter.APIClient) *cobra.Command {
	var (
		req    models.CreateTaskRequest
		date   int64
		weekly []string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a one-off or weekly task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.TaskName = args[0]

			if len(weekly) > 0 {
				schedule, err := parseSchedule(weekly)
				if err != nil {
					return err
				}
				req.IsRecursive = true
				req.RecTaskDate = schedule
			}
			if cmd.Flags().Changed("date") {
				req.TaskDate = &date
			}

			task, err := api.CreateTask(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s created task %s\n", successStyle.Render("✓"), task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.TaskDescription, "description", "", "task description")
	cmd.Flags().Int64Var(&date, "date", 0, "due date of a one-off task, unix seconds")
	cmd.Flags().StringArrayVar(&weekly, "weekly", nil, "weekly slot as DAY@HHMM, e.g. MONDAY@0930 (repeatable)")
	cmd.Flags().StringSliceVar(&req.TagIDs, "tag", nil, "tag id to attach (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("date", "weekly")

	return cmd
}

func tasksDoneCmd(api adapter.APIClient) *cobra.Command {
	var completion models.TaskCompletion

	cmd := &cobra.Command{
		Use:   "done <task id>",
		Short: "Mark a task completed for a day (today by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := api.CompleteTask(cmd.Context(), args[0], completion)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s completed on %s (completion %s)\n",
				successStyle.Render("✓"), created.CompletionDate, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&completion.CompletionDate, "date", "", "completion day as YYYY-MM-DD")

	return cmd
}

func tasksUndoCmd(api adapter.APIClient) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <task id> <completion id>",
		Short: "Remove a completion",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.UncompleteTask(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s completion removed\n", successStyle.Render("✓"))
			return nil
		},
	}
}

func tasksRmCmd(api adapter.APIClient) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.DeleteTask(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s task deleted\n", successStyle.Render("✓"))
			return nil
		},
	}
}

// parseSchedule turns DAY@HHMM slots into a schedule. The server checks
// the day names and times.
func parseSchedule(slots []string) (models.Schedule, error) {
	schedule := make(models.Schedule, 0, len(slots))
	for _, slot := range slots {
		day, hhmm, ok := strings.Cut(slot, "@")
		if !ok {
			return nil, fmt.Errorf("invalid weekly slot %q: want DAY@HHMM", slot)
		}

		at, err := strconv.Atoi(hhmm)
		if err != nil {
			return nil, fmt.Errorf("invalid weekly slot %q: %w", slot, err)
		}

		schedule = append(schedule, models.Recurrence{
			Day:  models.DayOfWeek(strings.ToUpper(day)),
			Time: at,
		})
	}
	return schedule, nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"scriptdesk/internal/api"
	"scriptdesk/internal/ipc"
	"scriptdesk/internal/tasks"
)

func newTaskCommand(ctx *commandContext) *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Track generation jobs",
	}

	taskCmd.AddCommand(newTaskAddCommand(ctx))
	taskCmd.AddCommand(newTaskUpdateCommand(ctx))
	taskCmd.AddCommand(newTaskCompleteCommand(ctx))
	taskCmd.AddCommand(newTaskFailCommand(ctx))
	taskCmd.AddCommand(newTaskRemoveCommand(ctx))
	taskCmd.AddCommand(newTaskShowCommand(ctx))
	taskCmd.AddCommand(newTaskListCommand(ctx))
	taskCmd.AddCommand(newTaskStatsCommand(ctx))

	return taskCmd
}

func newTaskAddCommand(ctx *commandContext) *cobra.Command {
	var id string
	var status string
	var message string
	var progress float64

	cmd := &cobra.Command{
		Use:   "add <type>",
		Short: "Register a new task",
		Long: "Register a new task of the given type (" +
			strings.Join(taskTypeNames(), ", ") + "). A task ID is generated unless --id is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID := strings.TrimSpace(id)
			if taskID == "" {
				taskID = uuid.NewString()
			}
			draft := api.TaskDraft{
				ID:       taskID,
				Type:     args[0],
				Status:   status,
				Progress: progress,
				Message:  message,
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.TaskAdd(ipc.TaskAddRequest{Task: draft})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added task %s (%s, %s)\n",
					resp.Task.ID, displayName(resp.Task.Type), resp.Task.Status)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Task ID (generated when empty)")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (defaults to pending)")
	cmd.Flags().Float64Var(&progress, "progress", 0, "Initial progress percentage")
	cmd.Flags().StringVar(&message, "message", "", "Initial status message")
	return cmd
}

func newTaskUpdateCommand(ctx *commandContext) *cobra.Command {
	var status string
	var message string
	var progress float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task's status, progress, or message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := ipc.TaskPatch{}
			if cmd.Flags().Changed("status") {
				patch.Status = &status
			}
			if cmd.Flags().Changed("progress") {
				patch.Progress = &progress
			}
			if cmd.Flags().Changed("message") {
				patch.Message = &message
			}
			if patch.Status == nil && patch.Progress == nil && patch.Message == nil {
				return fmt.Errorf("nothing to update: pass --status, --progress, or --message")
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.TaskUpdate(ipc.TaskUpdateRequest{ID: args[0], Patch: patch})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s is %s at %s\n",
					resp.Task.ID, resp.Task.Status, formatProgress(resp.Task.Progress))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status")
	cmd.Flags().Float64Var(&progress, "progress", 0, "New progress percentage")
	cmd.Flags().StringVar(&message, "message", "", "New status message")
	return cmd
}

func newTaskCompleteCommand(ctx *commandContext) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a running task completed at 100%",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := string(tasks.StatusCompleted)
			progress := 100.0
			patch := ipc.TaskPatch{Status: &status, Progress: &progress}
			if cmd.Flags().Changed("message") {
				patch.Message = &message
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.TaskUpdate(ipc.TaskUpdateRequest{ID: args[0], Patch: patch})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s completed\n", resp.Task.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Final status message")
	return cmd
}

func newTaskFailCommand(ctx *commandContext) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "fail <id>",
		Short: "Mark a task failed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := string(tasks.StatusFailed)
			patch := ipc.TaskPatch{Status: &status}
			if cmd.Flags().Changed("message") {
				patch.Message = &message
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.TaskUpdate(ipc.TaskUpdateRequest{ID: args[0], Patch: patch})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Task %s failed\n", resp.Task.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Failure message")
	return cmd
}

func newTaskRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.TaskRemove(args[0])
				if err != nil {
					return err
				}
				if !resp.Removed {
					fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found\n", args[0])
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", args[0])
				return nil
			})
		},
	}
}

func newTaskShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.TaskGet(args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				task := resp.Task
				fmt.Fprintf(out, "ID:       %s\n", task.ID)
				fmt.Fprintf(out, "Type:     %s\n", displayName(task.Type))
				fmt.Fprintf(out, "Status:   %s\n", task.Status)
				fmt.Fprintf(out, "Progress: %s\n", formatProgress(task.Progress))
				if task.Message != "" {
					fmt.Fprintf(out, "Message:  %s\n", task.Message)
				}
				if task.CreatedAt != "" {
					fmt.Fprintf(out, "Created:  %s\n", task.CreatedAt)
				}
				return nil
			})
		},
	}
}

func newTaskListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.TaskList()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(resp.Tasks) == 0 {
					fmt.Fprintln(out, "No tracked tasks")
					return nil
				}
				rows := make([][]string, 0, len(resp.Tasks))
				for _, task := range resp.Tasks {
					rows = append(rows, []string{
						task.ID,
						displayName(task.Type),
						task.Status,
						formatProgress(task.Progress),
						truncate(task.Message, 40),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Type", "Status", "Progress", "Message"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newTaskStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-status task counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.TaskStats()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				rows := buildTaskStatsRows(resp.Counts)
				if len(rows) == 0 {
					fmt.Fprintln(out, "No tracked tasks")
					return nil
				}
				fmt.Fprintln(out, renderTable([]string{"Status", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}
}

func taskTypeNames() []string {
	types := tasks.AllTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return names
}

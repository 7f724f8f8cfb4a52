package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"scriptdesk/internal/preflight"
	"scriptdesk/internal/tasks"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon and state core status",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			client, err := ctx.dialClient()
			if err != nil {
				for _, line := range renderSectionHeader("Daemon", colorize) {
					fmt.Fprintln(stdout, line)
				}
				fmt.Fprintln(stdout, renderStatusLine("Daemon", statusError, "not reachable", colorize))
				fmt.Fprintln(stdout)
				renderPreflight(ctx, cmd, colorize)
				return nil
			}
			defer client.Close()

			status, err := client.Status()
			if err != nil {
				return err
			}

			for _, line := range renderSectionHeader("Daemon", colorize) {
				fmt.Fprintln(stdout, line)
			}
			kind := statusError
			detail := "stopped"
			if status.Running {
				kind = statusOK
				detail = fmt.Sprintf("running (pid %d)", status.PID)
			}
			fmt.Fprintln(stdout, renderStatusLine("Daemon", kind, detail, colorize))
			if status.StartedAt != "" {
				fmt.Fprintln(stdout, renderStatusLine("Started", statusInfo, status.StartedAt, colorize))
			}
			fmt.Fprintln(stdout, renderStatusLine("Socket", statusInfo, status.SocketPath, colorize))
			if status.PrefsDBPath != "" {
				fmt.Fprintln(stdout, renderStatusLine("Preferences", statusInfo, status.PrefsDBPath, colorize))
			}
			fmt.Fprintln(stdout)

			for _, line := range renderSectionHeader("Script", colorize) {
				fmt.Fprintln(stdout, line)
			}
			if status.Script.Loaded {
				detail := fmt.Sprintf("%d clusters, %d dialogues, %d participants",
					status.Script.Clusters, status.Script.Dialogues, status.Script.Participants)
				fmt.Fprintln(stdout, renderStatusLine("Document", statusOK, detail, colorize))
			} else {
				fmt.Fprintln(stdout, renderStatusLine("Document", statusInfo, "none loaded", colorize))
			}
			fmt.Fprintln(stdout)

			for _, line := range renderSectionHeader("Tasks", colorize) {
				fmt.Fprintln(stdout, line)
			}
			rows := buildTaskStatsRows(status.TaskStats)
			if len(rows) == 0 {
				fmt.Fprintln(stdout, "No tracked tasks")
				return nil
			}
			fmt.Fprintln(stdout, renderTable([]string{"Status", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

func renderPreflight(ctx *commandContext, cmd *cobra.Command, colorize bool) {
	cfg := ctx.configValue()
	if cfg == nil {
		return
	}
	stdout := cmd.OutOrStdout()
	for _, line := range renderSectionHeader("Preflight", colorize) {
		fmt.Fprintln(stdout, line)
	}
	for _, result := range preflight.RunAll(cmd.Context(), cfg) {
		kind := statusError
		if result.Passed {
			kind = statusOK
		}
		fmt.Fprintln(stdout, renderStatusLine(result.Name, kind, result.Detail, colorize))
	}
}

// buildTaskStatsRows orders counts by lifecycle position rather than
// alphabetically, with any unknown statuses appended at the end.
func buildTaskStatsRows(stats map[string]int) [][]string {
	if len(stats) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(stats))
	rows := make([][]string, 0, len(stats))
	for _, status := range tasks.AllStatuses() {
		if count, ok := stats[string(status)]; ok {
			rows = append(rows, []string{displayName(string(status)), fmt.Sprintf("%d", count)})
			seen[string(status)] = struct{}{}
		}
	}
	rest := make([]string, 0)
	for status := range stats {
		if _, ok := seen[status]; !ok {
			rest = append(rest, status)
		}
	}
	sort.Strings(rest)
	for _, status := range rest {
		rows = append(rows, []string{displayName(status), fmt.Sprintf("%d", stats[status])})
	}
	return rows
}

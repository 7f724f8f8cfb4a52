package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scriptdesk/internal/ipc"
)

func newViewCommand(ctx *commandContext) *cobra.Command {
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Adjust selection, expansion, and search state",
	}

	viewCmd.AddCommand(newViewSelectCommand(ctx))
	viewCmd.AddCommand(newViewToggleCommand(ctx))
	viewCmd.AddCommand(newViewExpandAllCommand(ctx))
	viewCmd.AddCommand(newViewCollapseAllCommand(ctx))
	viewCmd.AddCommand(newViewSearchCommand(ctx))
	viewCmd.AddCommand(newViewStateCommand(ctx))

	return viewCmd
}

func newViewSelectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "select [cluster-id]",
		Short: "Select a cluster, or clear the selection when no ID is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clusterID := ""
			if len(args) == 1 {
				clusterID = args[0]
			}
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.ViewSelect(clusterID); err != nil {
					return err
				}
				if clusterID == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Selection cleared")
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Selected cluster %s\n", clusterID)
				}
				return nil
			})
		},
	}
}

func newViewToggleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <cluster-id>",
		Short: "Toggle a cluster's expansion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ViewToggle(args[0])
				if err != nil {
					return err
				}
				state := "collapsed"
				if resp.Expanded {
					state = "expanded"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cluster %s is now %s\n", args[0], state)
				return nil
			})
		},
	}
}

func newViewExpandAllCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "expand-all",
		Short: "Expand every cluster in the loaded script",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ViewExpandAll()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Expanded %d clusters\n", resp.Expanded)
				return nil
			})
		},
	}
}

func newViewCollapseAllCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "collapse-all",
		Short: "Collapse every cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.ViewCollapseAll(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Collapsed all clusters")
				return nil
			})
		},
	}
}

func newViewSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Set the search query, or clear it when no query is given",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return ctx.withClient(func(client *ipc.Client) error {
				if err := client.ViewSearch(query); err != nil {
					return err
				}
				if query == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "Search cleared")
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Searching for %q\n", query)
				}
				return nil
			})
		},
	}
}

func newViewStateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the current view state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ViewState()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				selected := resp.State.SelectedCluster
				if selected == "" {
					selected = "(none)"
				}
				fmt.Fprintf(out, "Selected: %s\n", selected)
				if len(resp.State.ExpandedClusters) == 0 {
					fmt.Fprintln(out, "Expanded: (none)")
				} else {
					fmt.Fprintf(out, "Expanded: %s\n", strings.Join(resp.State.ExpandedClusters, ", "))
				}
				if resp.State.SearchQuery != "" {
					fmt.Fprintf(out, "Search:   %q\n", resp.State.SearchQuery)
				}
				return nil
			})
		},
	}
}

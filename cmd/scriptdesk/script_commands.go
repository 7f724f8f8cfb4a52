package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptdesk/internal/config"
	"scriptdesk/internal/ipc"
)

func newScriptCommand(ctx *commandContext) *cobra.Command {
	scriptCmd := &cobra.Command{
		Use:   "script",
		Short: "Manage the loaded podcast script",
	}

	scriptCmd.AddCommand(newScriptLoadCommand(ctx))
	scriptCmd.AddCommand(newScriptShowCommand(ctx))
	scriptCmd.AddCommand(newScriptClearCommand(ctx))

	return scriptCmd
}

func newScriptLoadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Load a generated script document from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read script file: %w", err)
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ScriptLoad(data)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Loaded script: %d clusters, %d dialogues, %d participants\n",
					resp.Summary.Clusters, resp.Summary.Dialogues, resp.Summary.Participants)
				return nil
			})
		},
	}
}

func newScriptShowCommand(ctx *commandContext) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the loaded script",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ScriptShow()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !resp.Summary.Loaded {
					fmt.Fprintln(out, "No script loaded")
					return nil
				}

				state, err := client.ViewState()
				if err != nil {
					return err
				}
				expanded := make(map[string]struct{}, len(state.State.ExpandedClusters))
				for _, id := range state.State.ExpandedClusters {
					expanded[id] = struct{}{}
				}

				for _, cluster := range resp.Document.Clusters {
					marker := "+"
					_, isExpanded := expanded[cluster.ClusterID]
					if isExpanded || full {
						marker = "-"
					}
					selected := ""
					if state.State.SelectedCluster == cluster.ClusterID {
						selected = " *"
					}
					fmt.Fprintf(out, "%s %s  %s (%d dialogues)%s\n",
						marker, cluster.ClusterID, cluster.Title, len(cluster.Dialogues), selected)
					if !isExpanded && !full {
						continue
					}
					for _, dialogue := range cluster.Dialogues {
						viz := ""
						if dialogue.Visualization != nil {
							viz = fmt.Sprintf(" [%s]", dialogue.Visualization.Type)
						}
						fmt.Fprintf(out, "    %3d %-12s %s%s\n",
							dialogue.DialogueID, dialogue.Speaker, truncate(dialogue.Text, 70), viz)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Show every dialogue regardless of expansion state")
	return cmd
}

func newScriptClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Discard the loaded script",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				if _, err := client.ScriptClear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Script cleared")
				return nil
			})
		},
	}
}

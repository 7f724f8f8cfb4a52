package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scriptdesk/internal/api"
	"scriptdesk/internal/ipc"
)

func newDialogueCommand(ctx *commandContext) *cobra.Command {
	dialogueCmd := &cobra.Command{
		Use:   "dialogue",
		Short: "Edit dialogue lines in the loaded script",
	}

	dialogueCmd.AddCommand(newDialogueUpdateCommand(ctx))

	return dialogueCmd
}

func newDialogueUpdateCommand(ctx *commandContext) *cobra.Command {
	var speaker string
	var text string
	var emotion string
	var vizType string
	var vizContent string

	cmd := &cobra.Command{
		Use:   "update <cluster-id> <dialogue-id>",
		Short: "Update one dialogue line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialogueID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid dialogue id %q", args[1])
			}

			patch := ipc.DialoguePatch{}
			if cmd.Flags().Changed("speaker") {
				patch.Speaker = &speaker
			}
			if cmd.Flags().Changed("text") {
				patch.Text = &text
			}
			if cmd.Flags().Changed("emotion") {
				patch.Emotion = &emotion
			}
			if cmd.Flags().Changed("viz-type") || cmd.Flags().Changed("viz-content") {
				patch.Visualization = &api.VisualizationView{Type: vizType, Content: vizContent}
			}
			if patch.Speaker == nil && patch.Text == nil && patch.Emotion == nil && patch.Visualization == nil {
				return fmt.Errorf("nothing to update: pass --speaker, --text, --emotion, or --viz-type/--viz-content")
			}

			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.DialogueUpdate(ipc.DialogueUpdateRequest{
					ClusterID:  args[0],
					DialogueID: dialogueID,
					Patch:      patch,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s/%d: %s\n",
					args[0], resp.Dialogue.DialogueID, truncate(resp.Dialogue.Text, 60))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&speaker, "speaker", "", "New speaker name")
	cmd.Flags().StringVar(&text, "text", "", "New dialogue text")
	cmd.Flags().StringVar(&emotion, "emotion", "", "New emotion tag")
	cmd.Flags().StringVar(&vizType, "viz-type", "", "Visualization type (markdown or mermaid)")
	cmd.Flags().StringVar(&vizContent, "viz-content", "", "Visualization content")
	return cmd
}

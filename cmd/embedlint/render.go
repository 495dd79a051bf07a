package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdziat/embedbuilder"
)

// messagePayload is the body of a create-message or webhook request.
type messagePayload struct {
	Content string               `json:"content,omitempty"`
	Embeds  []embedbuilder.Embed `json:"embeds"`
}

func newRenderCmd(opts *options) *cobra.Command {
	var (
		payload bool
		content string
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Build the embeds in a definition file and print them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := opts.loader(cmd.ErrOrStderr()).LoadFile(args[0])
			if err != nil {
				return err
			}
			embeds, err := file.Build()
			if err != nil {
				return err
			}

			var v any = embeds
			if payload || content != "" {
				v = messagePayload{Content: content, Embeds: embeds}
			}

			var out []byte
			if compact {
				out, err = json.Marshal(v)
			} else {
				out, err = json.MarshalIndent(v, "", "  ")
			}
			if err != nil {
				return fmt.Errorf("encode embeds: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&payload, "payload", false, "Wrap the embeds in a message payload object")
	cmd.Flags().StringVar(&content, "content", "", "Message text to include in the payload (implies --payload)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Print compact JSON")
	return cmd
}

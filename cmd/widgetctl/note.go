package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	notesvc "github.com/janisto/widget-playground/internal/service/note"
	userdatasvc "github.com/janisto/widget-playground/internal/service/userdata"
)

func newNoteCmd(c *cli) *cobra.Command {
	editor := func() *notesvc.Editor {
		return notesvc.NewEditor(c.store, userdatasvc.NewRepository(c.store, nil))
	}

	cmd := &cobra.Command{
		Use:   "note",
		Short: "Show, replace or clear the note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), editor().Load(cmd.Context()))
			return err
		},
	}

	var file string
	set := &cobra.Command{
		Use:   "set [html]",
		Short: "Replace the note with html, or with the contents of --file (- for stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := noteContent(cmd, args, file)
			if err != nil {
				return err
			}
			return editor().Save(cmd.Context(), content)
		},
	}
	set.Flags().StringVarP(&file, "file", "f", "", "read the note from a file")
	cmd.AddCommand(set)

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return editor().Clear(cmd.Context())
		},
	})
	return cmd
}

func noteContent(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case len(args) == 1 && file != "":
		return "", errors.New("give the note as an argument or with --file, not both")
	case len(args) == 1:
		return args[0], nil
	case file == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	case file != "":
		b, err := os.ReadFile(file)
		return string(b), err
	default:
		return "", errors.New("no note content given")
	}
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	userdatasvc "github.com/janisto/widget-playground/internal/service/userdata"
	"github.com/janisto/widget-playground/internal/validation"
)

type userDataView struct {
	Draft     userdatasvc.Profile  `json:"draft"`
	Committed *userdatasvc.Profile `json:"committed,omitempty"`
}

func newUserDataCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "userdata",
		Aliases: []string{"user"},
		Short:   "Show, edit or submit the user-data form",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo := userdatasvc.NewRepository(c.store, nil)
			view := userDataView{Draft: repo.Load(cmd.Context())}
			if committed, ok := repo.LoadCommitted(cmd.Context()); ok {
				view.Committed = &committed
			}
			return printJSON(cmd.OutOrStdout(), view)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set <field> <value>",
		Short:     "Set one draft field (name, address, email or phone)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: validation.Fields,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := userdatasvc.NewForm(userdatasvc.NewRepository(c.store, nil), nil)
			form.Open(cmd.Context())
			draft, err := form.SetField(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), draft)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "submit",
		Short: "Validate the draft and commit it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := userdatasvc.NewForm(userdatasvc.NewRepository(c.store, nil), nil)
			form.Open(cmd.Context())
			record, err := form.Submit(cmd.Context())
			if err != nil {
				var verr *userdatasvc.ValidationError
				if errors.As(err, &verr) {
					for _, field := range verr.Result.Invalid() {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, validation.Message(field))
					}
				}
				return err
			}
			return printJSON(cmd.OutOrStdout(), record)
		},
	})
	return cmd
}

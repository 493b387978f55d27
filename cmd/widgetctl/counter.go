package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	countersvc "github.com/janisto/widget-playground/internal/service/counter"
)

func newCounterCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Show or change the counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cell := countersvc.NewCell(c.store)
			return printCounter(cmd, cell.Load(cmd.Context()))
		},
	}

	for _, sub := range []struct {
		use, short string
		apply      func(*countersvc.Cell, context.Context) (int, error)
	}{
		{"inc", "Increment the counter", (*countersvc.Cell).Increment},
		{"dec", "Decrement the counter, never below zero", (*countersvc.Cell).Decrement},
		{"reset", "Reset the counter to zero", (*countersvc.Cell).Reset},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:   sub.use,
			Short: sub.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cell := countersvc.NewCell(c.store)
				cell.Load(cmd.Context())
				v, err := sub.apply(cell, cmd.Context())
				if err != nil {
					return err
				}
				return printCounter(cmd, v)
			},
		})
	}
	return cmd
}

func printCounter(cmd *cobra.Command, v int) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d (%s)\n", v, countersvc.Color(v))
	return err
}

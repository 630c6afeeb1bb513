package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woodpuzzles/kumiki/notch"
	"github.com/woodpuzzles/kumiki/render"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "list the 24 canonical stick types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			r := render.New()
			for _, form := range notch.CanonicalForms() {
				fmt.Fprintf(out, "stick %d: %d notches%s\n", form, notch.Popcount(form), symmetries(form))
				for _, line := range strings.Split(r.Stick(form, notch.Identity), "\n") {
					fmt.Fprintf(out, "  %s\n", line)
				}
			}
			return nil
		},
	}
}

func symmetries(r int) string {
	var tags []string
	if notch.SymmetricLR(r) {
		tags = append(tags, "left-right symmetric")
	}
	if notch.SymmetricTB(r) {
		tags = append(tags, "top-bottom symmetric")
	}
	if notch.SymmetricRot(r) {
		tags = append(tags, "rotationally symmetric")
	}
	if len(tags) == 0 {
		return ""
	}
	return " (" + strings.Join(tags, ", ") + ")"
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/woodpuzzles/kumiki/assembly"
	"github.com/woodpuzzles/kumiki/config"
	"github.com/woodpuzzles/kumiki/render"
	"github.com/woodpuzzles/kumiki/solve"
)

func solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve puzzle.yaml",
		Short: "assemble a stick inventory over its base tray",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pz, err := config.Load(args[0])
			if err != nil {
				return err
			}
			inv := pz.Assembly()
			model, err := assembly.Build(inv, pz.Layers, pz.Base)
			if err != nil {
				return err
			}
			slog.Info("model built",
				"layers", pz.Layers,
				"variables", len(model.Problem.Maximize),
				"constraints", len(model.Problem.Constraints))
			res, err := (&solve.Gophersat{Verbose: verbose}).Solve(model.Problem)
			if err != nil {
				return err
			}
			lay, err := model.Decode(res)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d of %d positions filled (%s)\n\n", lay.Placed, len(lay.Sticks), res.Status)
			fmt.Fprint(out, render.New().Assembly(inv, lay))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"strconv"

	"shapelab/internal/service"

	"github.com/spf13/cobra"
)

func newAreaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "area <type> [params...]",
		Short: "Build one shape and print its area",
		Long: `Build a shape through the factory and print its area and whether it is
right-angled. Flags must come before the shape type; everything after it,
including negative numbers, is read as a parameter.

Examples:
  shapelab area circle 10
  shapelab area triangle 3 4 5
  shapelab area circle -5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			svc := service.NewShapeService(nil, a.logger)
			shape, err := svc.Create(args[0], params...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shape:        %v\n", shape)
			fmt.Fprintf(out, "area:         %s\n", strconv.FormatFloat(shape.Area(), 'f', -1, 64))
			fmt.Fprintf(out, "right angled: %t\n", shape.IsRightAngled())
			return nil
		},
	}

	// Stop flag parsing at the shape type so "-5" is a parameter.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List registered shape kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewShapeService(nil, a.logger)
			for _, kind := range svc.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), kind)
			}
			return nil
		},
	}
}

// parseParams converts positional arguments to floats
func parseParams(args []string) ([]float64, error) {
	params := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter %q: not a number", arg)
		}
		params = append(params, v)
	}
	return params, nil
}

package main

import (
	"fmt"
	"os"

	"shapelab/internal/codec"
	"shapelab/internal/service"

	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a document of shapes",
		Long: `Read a YAML or JSON document of shape specs, build every shape and
print a report with each area, right-angle flag or construction error.

Document format:
  shapes:
    - type: circle
      params: [10]
    - type: triangle
      params: [3, 4, 5]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inFormat := codec.FormatFromPath(file)
			if _, err := codec.ForFormat(inFormat); err != nil {
				return fmt.Errorf("cannot infer format of %s: use a .yaml, .yml or .json file", file)
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open document: %w", err)
			}
			defer f.Close()

			svc := service.NewShapeService(nil, a.logger)
			report, err := svc.EvaluateReader(f, inFormat)
			if err != nil {
				return err
			}

			outFormat := format
			if outFormat == "" {
				outFormat = a.cfg.Output.Format
			}
			return svc.ExportReport(report, cmd.OutOrStdout(), outFormat)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Shape document (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&format, "format", "", "Report format: yaml or json (default from config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"shapelab/internal/domain"
	"shapelab/internal/loader"
	"shapelab/internal/repository/sqlite"
	"shapelab/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newJoinCmd(a *app) *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join products to their categories",
		Long: `Load a catalog of products, categories and product/category links and
print every product/category pair. Products without a category are listed
once with an empty category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loader.LoadCatalog(file)
			if err != nil {
				return err
			}

			repo, err := sqlite.New(a.cfg.Database.Path)
			if err != nil {
				return err
			}
			defer repo.Close()

			svc := service.NewCatalogService(repo, a.logger)
			rows, err := svc.ImportAndJoin(cmd.Context(), catalog)
			if err != nil {
				return err
			}

			return writeRows(cmd.OutOrStdout(), rows, format)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Catalog YAML file")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, yaml or json")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// writeRows renders join rows; NULL categories print as empty cells
func writeRows(w io.Writer, rows []domain.ProductCategory, format string) error {
	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PRODUCT\tCATEGORY")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\n", row.ProductName, row.Category())
		}
		return tw.Flush()
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(rows)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

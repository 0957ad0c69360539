package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// NewSearchCommand búsqueda con las mismas reglas del buscador de la API.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "search <consulta>",
		Short: "Buscar artículos por nombre, código, marca o referencia",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found := rootOpts.svc.Search.Search(strings.Join(args, " "), section)
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), found)
			}
			return printArticles(cmd, found)
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "ID de la sección (vacío = todo el inventario)")

	return cmd
}

func printArticles(cmd *cobra.Command, articles []entity.Article) error {
	if len(articles) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "sin resultados")
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CÓDIGO\tNOMBRE\tMARCA\tUNIDADES\tPRECIO")
	for _, a := range articles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", a.Code, a.Name, a.Brand, a.Units, a.Price.String())
	}
	return tw.Flush()
}

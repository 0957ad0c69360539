package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-local/pkg/currency"
)

// NewStatsCommand resumen del inventario.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Resumen: artículos, unidades, valor y stock bajo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := rootOpts.svc.Articles.Stats()
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), s)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Artículos:      %d\n", s.Articles)
			fmt.Fprintf(w, "Secciones:      %d\n", s.Sections)
			fmt.Fprintf(w, "Unidades:       %d\n", s.TotalUnits)
			fmt.Fprintf(w, "Valor total:    %s\n", currency.FormatCOP(s.TotalValue))
			fmt.Fprintf(w, "Stock bajo:     %d (≤ %d unidades)\n", s.LowStock, s.LowStockLimit)
			_, err := fmt.Fprintf(w, "Agotados:       %d\n", s.OutOfStock)
			return err
		},
	}
}

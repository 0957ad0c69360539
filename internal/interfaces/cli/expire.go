package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewExpireQuotesCommand marca como vencidas las cotizaciones activas fuera de vigencia.
func NewExpireQuotesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "expire-quotes",
		Short: "Marcar cotizaciones vencidas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := rootOpts.svc.Quotes.ExpireQuotes(cmd.Context())
			if err != nil {
				return err
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]int{"expired": n})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d cotizaciones vencidas\n", n)
			return err
		},
	}
}

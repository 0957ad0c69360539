package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewExportCommand exporta en el mismo formato que acepta import.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		section string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exportar artículos en formato de carga masiva",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := rootOpts.svc.Articles.Export(section)
			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("crear %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			_, err := io.WriteString(w, text)
			return err
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "ID de la sección (vacío = todo el inventario)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "archivo destino (por defecto stdout)")

	return cmd
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// NewImportCommand carga masiva desde archivo ("-" = stdin).
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var latin1 bool

	cmd := &cobra.Command{
		Use:   "import <archivo>",
		Short: "Carga masiva de artículos (code,name,brand,units,price[,reference])",
		Long: `Importa artículos al inventario general. Cada línea lleva los campos separados
por coma o tabulador; las líneas incompletas se omiten. Si el código ya existe el
artículo se actualiza.

Las hojas exportadas desde Excel en Windows suelen venir en ISO-8859-1: usar --latin1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0], latin1)
			if err != nil {
				return err
			}
			res, err := rootOpts.svc.Articles.BulkAdd(cmd.Context(), text)
			if err != nil {
				return err
			}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "✓ %d agregados, %d actualizados\n", len(res.Added), len(res.Updated))
			return err
		},
	}

	cmd.Flags().BoolVar(&latin1, "latin1", false, "el archivo viene codificado en ISO-8859-1")

	return cmd
}

func readInput(cmd *cobra.Command, path string, latin1 bool) (string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("abrir %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("leer %s: %w", path, err)
	}
	return string(data), nil
}

// Package cli comandos de consola sobre el mismo snapshot que usa la API.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-local/internal/bootstrap"
)

// Opener abre el store y devuelve los casos de uso junto con la función de cierre.
type Opener func(ctx context.Context) (*bootstrap.Services, func(), error)

// RootOptions flags globales.
type RootOptions struct {
	Format string // "text" | "json"

	open    Opener
	svc     *bootstrap.Services
	closeFn func()
}

// ValidFormats formatos de salida admitidos.
var ValidFormats = []string{"text", "json"}

// NewRootCommand comando raíz inventarioctl. El store se abre una vez antes de cada subcomando.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:           "inventarioctl",
		Short:         "Administración del inventario local desde la consola",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("formato %q inválido: debe ser uno de %v", opts.Format, ValidFormats)
			}
			svc, closeFn, err := opts.open(cmd.Context())
			if err != nil {
				return err
			}
			opts.svc, opts.closeFn = svc, closeFn
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.closeFn != nil {
				opts.closeFn()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "formato de salida (text|json)")

	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewExpireQuotesCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// writeJSON salida indentada para --format json.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

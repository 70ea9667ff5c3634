// Package cmd define la línea de comandos: servidor, migraciones y usuarios.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute ejecuta el comando raíz
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hospital",
		Short:        "Hospital Management System API",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(usuarioCmd())
	return root
}

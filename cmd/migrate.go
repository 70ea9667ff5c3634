package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lizet96/hospital-system/database"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Ejecuta las migraciones de la base de datos",
	}

	// migrate up
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return conMigrador(func(m *database.Migrator) error {
				if err := m.Up(); err != nil {
					return fmt.Errorf("migración fallida: %w", err)
				}
				return imprimirVersion(cmd, m)
			})
		},
	})

	// migrate down
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revierte todas las migraciones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return conMigrador(func(m *database.Migrator) error {
				if err := m.Down(); err != nil {
					return fmt.Errorf("revertir migraciones: %w", err)
				}
				return imprimirVersion(cmd, m)
			})
		},
	})

	// migrate version
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Muestra la versión aplicada del esquema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return conMigrador(func(m *database.Migrator) error {
				return imprimirVersion(cmd, m)
			})
		},
	})
	return cmd
}

func conMigrador(fn func(m *database.Migrator) error) error {
	e, err := cargarEntorno()
	if err != nil {
		return err
	}
	defer e.Close()

	m, err := e.migrador()
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func imprimirVersion(cmd *cobra.Command, m *database.Migrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	estado := "limpio"
	if dirty {
		estado = "sucio"
	}
	cmd.Printf("Versión del esquema: %d (%s)\n", version, estado)
	return nil
}

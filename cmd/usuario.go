package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/lizet96/hospital-system/config"
	"github.com/lizet96/hospital-system/models"
	"github.com/lizet96/hospital-system/services"
)

func usuarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usuario",
		Short: "Administra los usuarios de la API",
	}

	crear := &cobra.Command{
		Use:   "crear",
		Short: "Registra un usuario con contraseña",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			rol, _ := cmd.Flags().GetString("rol")

			e, err := cargarEntorno()
			if err != nil {
				return err
			}
			defer e.Close()
			if e.cfg.Storage == config.StorageMemory {
				return errors.New("crear usuarios requiere STORAGE=postgres")
			}
			if err := e.abrirAlmacen(cmd.Context()); err != nil {
				return err
			}

			auth := services.NewAuthService(e.repos.Usuarios, services.AuthConfig{Secret: e.cfg.JWTSecret}, e.log)
			u, err := auth.CrearUsuario(cmd.Context(), email, password, rol)
			if err != nil {
				return err
			}
			cmd.Printf("Usuario %d creado: %s (%s)\n", u.IDUsuario, u.Email, u.Rol)
			return nil
		},
	}
	crear.Flags().String("email", "", "Correo del usuario")
	crear.Flags().String("password", "", "Contraseña")
	crear.Flags().String("rol", models.RolRecepcion, "Rol: admin, recepcion o medico")
	_ = crear.MarkFlagRequired("email")
	_ = crear.MarkFlagRequired("password")

	cmd.AddCommand(crear)
	return cmd
}

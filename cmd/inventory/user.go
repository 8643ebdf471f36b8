package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newUserCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage login users",
	}

	var password, role string
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a user with a bcrypt-hashed password",
		Long:  "add creates a user. Roles: admin, products (productos), warehouses (almacenes), guest.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				if err := a.auth.CreateUser(ctx, args[0], password, role); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "user %s created with role %s", args[0], role)
				return nil
			})
		},
	}
	add.Flags().StringVar(&password, "new-password", "", "password of the new user")
	add.Flags().StringVar(&role, "role", "guest", "role of the new user")
	_ = add.MarkFlagRequired("new-password")

	cmd.AddCommand(add)
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"receipt/driver/receipt_db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the receipt tables when missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnvironment(cmd.Context())
		if err != nil {
			return err
		}
		defer env.pool.Close()

		if err := receipt_db.NewReceiptDBRepository(env.pool).ApplySchema(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
		return nil
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "Manage databases",
}

var databasesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all databases",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer client.Close()

		dbs, err := client.Databases().All()
		if err != nil {
			return err
		}
		for _, db := range dbs {
			fmt.Println(db.Name())
		}
		return nil
	},
}

var databasesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Databases().Create(args[0]); err != nil {
			return err
		}
		fmt.Printf("created %s\n", args[0])
		return nil
	},
}

var databasesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer client.Close()

		db, err := client.Databases().Get(args[0])
		if err != nil {
			return err
		}
		if err := db.Delete(); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

var databasesSchemaCmd = &cobra.Command{
	Use:   "schema <name>",
	Short: "Print a database's schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}
		defer client.Close()

		db, err := client.Databases().Get(args[0])
		if err != nil {
			return err
		}
		schema, err := db.Schema()
		if err != nil {
			return err
		}
		fmt.Println(schema)
		return nil
	},
}

func init() {
	databasesCmd.AddCommand(databasesListCmd)
	databasesCmd.AddCommand(databasesCreateCmd)
	databasesCmd.AddCommand(databasesDeleteCmd)
	databasesCmd.AddCommand(databasesSchemaCmd)
	rootCmd.AddCommand(databasesCmd)
}

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewLatestCommand creates the latest command.
func NewLatestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "latest <crate>",
		Short: "Show the latest version of a crate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			crate, err := client.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			latest, err := crate.LatestVersion()
			if err != nil {
				return err
			}

			fmt.Println(latest)

			return nil
		},
	}
}

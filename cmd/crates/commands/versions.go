package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cratehub/crates-client/pkg/crates"
)

// NewVersionsCommand creates the versions command.
func NewVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "versions <crate>",
		Short: "List crate versions",
		Long:  "List every published version of a crate, newest first",
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

			return outputVersions(crate.Versions)
		},
	}
}

func outputVersions(versions []crates.Version) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return EncodeJSON(versions)
	case OutputFormatYAML:
		return EncodeYAML(versions)
	default:
		return outputVersionsTable(versions)
	}
}

func outputVersionsTable(versions []crates.Version) error {
	if len(versions) == 0 {
		fmt.Println("No versions found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Version", "License", "Size", "Yanked", "Features")

	for _, v := range versions {
		license := NotAvailable
		if v.License != nil {
			license = *v.License
		}

		size := NotAvailable
		if v.CrateSize != nil {
			size = strconv.FormatInt(*v.CrateSize, 10)
		}

		yanked := "no"
		if v.Yanked {
			yanked = "yes"
		}

		_ = table.Append(v.Num, license, size, yanked, strconv.Itoa(len(v.Features)))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

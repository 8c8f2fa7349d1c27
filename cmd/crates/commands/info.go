package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cratehub/crates-client/pkg/crates"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <crate>",
		Short: "Show crate metadata",
		Long:  "Fetch and display the full metadata record for a crate",
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

			return outputCrateInfo(crate)
		},
	}
}

func outputCrateInfo(crate *crates.Crate) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return EncodeJSON(crate)
	case OutputFormatYAML:
		return EncodeYAML(crate)
	default:
		return outputCrateInfoTable(crate)
	}
}

func outputCrateInfoTable(crate *crates.Crate) error {
	meta := crate.Crate

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	_ = table.Append("Name", meta.Name)
	_ = table.Append("Description", meta.Description)
	_ = table.Append("Newest Version", meta.NewestVersion)
	_ = table.Append("Max Stable Version", meta.MaxStableVersion)
	_ = table.Append("Downloads", strconv.FormatInt(meta.Downloads, 10))
	_ = table.Append("Recent Downloads", strconv.FormatInt(meta.RecentDownloads, 10))
	_ = table.Append("Repository", meta.Repository)
	_ = table.Append("Homepage", stringOrNA(meta.Homepage))
	_ = table.Append("Documentation", stringOrNA(meta.Documentation))
	_ = table.Append("Categories", strings.Join(meta.Categories, ", "))
	_ = table.Append("Keywords", strings.Join(meta.Keywords, ", "))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func stringOrNA(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}

	return *s
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrVersionHasNoFeatures is returned when a crate version exists but
// declares no feature flags, or the version is not present at all.
var ErrVersionHasNoFeatures = errors.New("no features found for this version")

// NewFeaturesCommand creates the features command.
func NewFeaturesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "features <crate> <version>",
		Short: "Show feature flags for a crate version",
		Long:  "Show the feature map declared by one published version of a crate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			crate, err := client.Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			features, ok := crate.FeaturesForVersion(args[1])
			if !ok {
				return fmt.Errorf("%w: %s %s", ErrVersionHasNoFeatures, args[0], args[1])
			}

			return outputFeatures(features)
		},
	}
}

func outputFeatures(features map[string][]string) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return EncodeJSON(features)
	case OutputFormatYAML:
		return EncodeYAML(features)
	default:
		return outputFeaturesTable(features)
	}
}

func outputFeaturesTable(features map[string][]string) error {
	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}

	sort.Strings(names)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Feature", "Enables")

	for _, name := range names {
		_ = table.Append(name, strings.Join(features[name], ", "))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/config"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		// round trip through JSON so YAML output uses the same option names
		b, err := json.Marshal(cfg)
		if err != nil {
			return err
		}
		switch configFormat {
		case "json":
			var out any
			if err := json.Unmarshal(b, &out); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		case "yaml":
			var out map[string]any
			if err := json.Unmarshal(b, &out); err != nil {
				return err
			}
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(out)
		default:
			return fmt.Errorf("unsupported format: %s", configFormat)
		}
	},
}

func init() {
	configCmd.Flags().StringVarP(&configFormat, "format", "f", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(configCmd)
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/veldrin/prisma-cli/internal/config"
	"github.com/veldrin/prisma-cli/internal/domain"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.config
		fmt.Printf("default_minutes = %d\n", cfg.DefaultMinutes)
		fmt.Printf("mode = %s\n", cfg.Mode)
		for i, p := range cfg.Presets.GetPresets() {
			fmt.Printf("presets.preset%d = %s (%dm)\n", i+1, p.Name, p.Minutes)
		}
		fmt.Printf("notifications.enabled = %v\n", cfg.Notifications.Enabled)
		fmt.Printf("notifications.sound = %v\n", cfg.Notifications.Sound)
		fmt.Printf("mcp.enabled = %v\n", cfg.MCP.Enabled)
		fmt.Printf("storage.data_dir = %s\n", cfg.Storage.DataDir)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "default_minutes":
			fmt.Println(app.config.DefaultMinutes)
		case "mode":
			fmt.Println(app.config.Mode)
		case "notifications.enabled":
			fmt.Println(app.config.Notifications.Enabled)
		case "notifications.sound":
			fmt.Println(app.config.Notifications.Sound)
		case "mcp.enabled":
			fmt.Println(app.config.MCP.Enabled)
		case "storage.data_dir":
			fmt.Println(app.config.Storage.DataDir)
		default:
			return fmt.Errorf("unknown config key: %s", args[0])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "default_minutes":
			minutes, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid minutes value %q: %w", value, err)
			}
			app.config.DefaultMinutes = config.ClampMinutes(minutes)
		case "mode":
			mode, err := domain.ValidateMode(value)
			if err != nil {
				return fmt.Errorf("invalid mode %q: must be classic or prisma", value)
			}
			app.config.Mode = string(mode)
		case "notifications.enabled":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean value %q: %w", value, err)
			}
			app.config.Notifications.Enabled = enabled
		case "notifications.sound":
			sound, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean value %q: %w", value, err)
			}
			app.config.Notifications.Sound = sound
		case "mcp.enabled":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean value %q: %w", value, err)
			}
			app.config.MCP.Enabled = enabled
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := config.Save(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

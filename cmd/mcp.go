package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/veldrin/prisma-cli/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	Long: `Run a Model Context Protocol server exposing read-only timer status
and focus history, for use by agent integrations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !app.config.MCP.Enabled {
			return fmt.Errorf("MCP server is disabled; enable with: prisma config set mcp.enabled true")
		}

		server := mcp.NewServer(app.status)
		return server.Start(cmd.Context())
	},
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/safedrive/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes the tools add_trip, add_vehicle, add_driver, summarize
and export, and the resources safedrive://trips, safedrive://vehicles and
safedrive://drivers.

By default, the server communicates over stdio using JSON-RPC. Use --port
to start an HTTP server instead, e.g. for the MCP Inspector.

Examples:
  # Stdio mode (default)
  safedrive mcp serve

  # HTTP mode
  safedrive mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "safedrive": {
        "command": "/path/to/safedrive",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Annotations: needsRecords(),
	RunE:        runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Records: recordService,
		Reports: reportService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

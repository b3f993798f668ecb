package main

import (
	"fmt"

	"github.com/sandevgo/gemcp/internal/service/ui"
	"github.com/sandevgo/gemcp/internal/transport/mcpserver"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools this server exposes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.TitleStyle.Render("TOOLS"))
		for _, tool := range mcpserver.Definitions() {
			fmt.Printf("  %s  %s\n",
				ui.UsageStyle.Render(tool.Name),
				ui.DescStyle.Render(tool.Description))
		}
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

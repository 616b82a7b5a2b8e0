package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennyg/vellum/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "vellum",
	Short: "Claude Code environment configuration toolkit",
	Long: ui.Logo() + `

  Author, validate, and resolve environment configurations:
  bundles of agents, slash commands, hooks, output styles, and
  MCP servers that the environment toolbox installs together.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Root returns the fully wired root command for main to execute.
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(showCmd)
}

// exitWithError prints an error and exits.
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Error.Render("Error: "+msg))
	os.Exit(1)
}

// printJSON writes indented JSON for --json output modes.
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitWithError(err.Error())
	}
	fmt.Println(string(data))
}

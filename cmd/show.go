package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kennyg/vellum/internal/envconfig"
	"github.com/kennyg/vellum/internal/ui"
)

var showCmd = &cobra.Command{
	Use:     "show <config>",
	Aliases: []string{"info"},
	Short:   "Show an environment configuration summary",
	Long: `Display what an environment configuration bundles: agents, slash
commands, output styles, hooks, MCP servers, and launch defaults.`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	cfg, err := envconfig.Load(args[0])
	if err != nil {
		exitWithError(err.Error())
	}

	fmt.Println()
	fmt.Println(ui.Title.Render(cfg.Name))
	fmt.Println()

	if cfg.Model != "" {
		fmt.Println(ui.KeyValue("Model", cfg.Model))
	}
	if cfg.ClaudeCodeVersion != "" {
		fmt.Println(ui.KeyValue("Version", cfg.ClaudeCodeVersion))
	}
	if cfg.CommandName != "" {
		fmt.Println(ui.KeyValue("Command", ui.Render(ui.Code, cfg.CommandName)))
	}
	if cfg.BaseURL != "" {
		fmt.Println(ui.KeyValue("Base URL", cfg.BaseURL))
	}
	if cfg.Permissions != nil && cfg.Permissions.DefaultMode != "" {
		fmt.Println(ui.KeyValue("Permissions", cfg.Permissions.DefaultMode))
	}
	if len(cfg.EnvVariables) > 0 {
		fmt.Println(ui.KeyValue("Env vars", strconv.Itoa(len(cfg.EnvVariables))))
	}

	fmt.Println()
	fmt.Println(ui.Subtitle.Render("Resources"))
	fmt.Println(ui.Divider(40))
	showList(ui.AgentBadge(), cfg.Agents)
	showList(ui.CmdBadge(), cfg.SlashCommands)
	showList(ui.StyleBadge(), cfg.OutputStyles)
	if cfg.Hooks != nil {
		showList(ui.HookBadge(), cfg.Hooks.Files)
	}

	if len(cfg.MCPServers) > 0 {
		fmt.Println()
		fmt.Println(ui.Subtitle.Render("MCP servers"))
		fmt.Println(ui.Divider(40))
		for _, server := range cfg.MCPServers {
			endpoint := ""
			if server.HTTP != nil {
				endpoint = server.HTTP.URL
			} else if server.Stdio != nil {
				endpoint = server.Stdio.Command
			}
			fmt.Printf("  %s %s %s\n", ui.McpBadge(), server.Name,
				ui.Muted.Render(fmt.Sprintf("(%s, %s) %s", server.Transport(), server.Scope, endpoint)))
		}
	}

	if cfg.CommandDefaults != nil {
		fmt.Println()
		fmt.Println(ui.Subtitle.Render("Launch defaults"))
		fmt.Println(ui.Divider(40))
		if cfg.CommandDefaults.OutputStyle != "" {
			fmt.Println(ui.KeyValue("Output style", cfg.CommandDefaults.OutputStyle))
		}
		if cfg.CommandDefaults.SystemPrompt != "" {
			fmt.Println(ui.KeyValue("Prompt", cfg.CommandDefaults.SystemPrompt))
		}
	}
	fmt.Println()
}

func showList(badge string, refs []string) {
	for _, ref := range refs {
		fmt.Printf("  %s %s\n", badge, ref)
	}
}

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kennyg/vellum/internal/envconfig"
	"github.com/kennyg/vellum/internal/resolve"
	"github.com/kennyg/vellum/internal/ui"
)

var (
	resolveJSON    bool
	resolveBaseURL string
	resolveOrigin  string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <config> [reference]",
	Short: "Resolve resource references to fetchable locations",
	Long: `Resolve every resource reference in an environment configuration, or a
single reference, to the location the toolbox would fetch it from.

Precedence: full URLs pass through unchanged; ~-paths expand to the home
directory; otherwise base-url applies (with {path} substitution when
present), then URL origins resolve relatively, then local paths resolve
against the config's directory.

Examples:
  vellum resolve environments/python.yaml
  vellum resolve environments/python.yaml agents/reviewer.md
  vellum resolve env.yaml --origin https://host/envs/env.yaml`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output resolved locations as JSON")
	resolveCmd.Flags().StringVar(&resolveBaseURL, "base-url", "", "override the config's base-url")
	resolveCmd.Flags().StringVar(&resolveOrigin, "origin", "", "treat the config as loaded from this path or URL")
}

func runResolve(cmd *cobra.Command, args []string) {
	cfg, err := envconfig.Load(args[0])
	if err != nil {
		exitWithError(err.Error())
	}

	origin := resolveOrigin
	if origin == "" {
		origin, err = filepath.Abs(args[0])
		if err != nil {
			exitWithError(err.Error())
		}
	}
	// Changed, not non-empty: --base-url "" clears the config's base-url
	// so local resolution can be previewed.
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = resolveBaseURL
	}

	if len(args) == 2 {
		resolved, err := resolve.Resolve(args[1], cfg.BaseURL, origin)
		if err != nil {
			exitWithError(err.Error())
		}
		if resolveJSON {
			printJSON(map[string]string{"reference": args[1], "resolved": resolved})
			return
		}
		fmt.Println(resolved)
		return
	}

	locations, err := resolve.Config(cfg, origin)
	if err != nil {
		exitWithError(err.Error())
	}

	if resolveJSON {
		printJSON(locations)
		return
	}

	if len(locations) == 0 {
		fmt.Println(ui.Muted.Render("  no resource references"))
		return
	}

	fmt.Println()
	fmt.Println(ui.SectionHeader("Resolved locations"))
	fmt.Println()
	for _, loc := range locations {
		fmt.Printf("  %s %s\n", kindBadge(loc.Kind), loc.Reference)
		fmt.Println(ui.Muted.Render("      → " + loc.Resolved))
	}
}

func kindBadge(kind resolve.Kind) string {
	switch kind {
	case resolve.KindAgent:
		return ui.AgentBadge()
	case resolve.KindSlashCommand:
		return ui.CmdBadge()
	case resolve.KindOutputStyle:
		return ui.StyleBadge()
	case resolve.KindHook:
		return ui.HookBadge()
	case resolve.KindSystemPrompt:
		return ui.PromptBadge()
	default:
		return "[?]"
	}
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kennyg/vellum/internal/lint"
	"github.com/kennyg/vellum/internal/ui"
)

var (
	validateJSON   bool
	validateStrict bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate environment configuration files",
	Long: `Validate an environment configuration file, or every YAML file in a
directory, against the document schema.

Schema and semantic problems are errors. Referenced local files that do
not exist are warnings; with --strict, warnings also fail the run.

Examples:
  vellum validate environments/python.yaml
  vellum validate environments/ --json --strict`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output validation results as JSON")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "exit non-zero on warnings (for CI)")
}

func runValidate(cmd *cobra.Command, args []string) {
	info, err := os.Stat(args[0])
	if err != nil {
		exitWithError(err.Error())
	}

	if info.IsDir() {
		runValidateDir(args[0])
		return
	}
	runValidateFile(args[0])
}

func runValidateFile(path string) {
	report := lint.File(path)

	if validateJSON {
		printJSON(map[string]any{
			"file":     report.Path,
			"valid":    report.Valid(),
			"errors":   report.Errors,
			"warnings": report.Warnings,
		})
	} else {
		printReport(report)
	}

	if !report.Valid() || (validateStrict && len(report.Warnings) > 0) {
		os.Exit(1)
	}
}

func runValidateDir(dir string) {
	reports, err := lint.Dir(dir)
	if err != nil {
		exitWithError(err.Error())
	}
	if len(reports) == 0 {
		exitWithError(fmt.Sprintf("no YAML files found in %s", dir))
	}

	summary := lint.Summarize(reports)

	if validateJSON {
		printJSON(map[string]any{
			"directory":     dir,
			"valid_count":   summary.Valid,
			"invalid_count": summary.Invalid,
			"total":         summary.Total,
		})
	} else {
		fmt.Println()
		fmt.Println(ui.SectionHeader("Validating " + dir))
		fmt.Println()
		for _, report := range reports {
			printReport(report)
		}
		fmt.Println()
		fmt.Println(ui.Divider(40))
		fmt.Println(ui.KeyValue("Valid", strconv.Itoa(summary.Valid)))
		fmt.Println(ui.KeyValue("Invalid", strconv.Itoa(summary.Invalid)))
		fmt.Println(ui.KeyValue("Total", strconv.Itoa(summary.Total)))
	}

	if summary.Invalid > 0 || (validateStrict && anyWarnings(reports)) {
		os.Exit(1)
	}
}

func anyWarnings(reports []*lint.Report) bool {
	for _, r := range reports {
		if len(r.Warnings) > 0 {
			return true
		}
	}
	return false
}

func printReport(report *lint.Report) {
	name := filepath.Base(report.Path)
	switch {
	case report.Valid() && len(report.Warnings) == 0:
		fmt.Println(ui.SuccessLine(name + " - valid"))
	case report.Valid():
		fmt.Println(ui.SuccessLine(name + " - valid with warnings"))
	default:
		fmt.Println(ui.ErrorLine(name + " - invalid"))
	}
	for _, e := range report.Errors {
		fmt.Println(ui.Muted.Render("      - " + e))
	}
	for _, w := range report.Warnings {
		fmt.Println("  " + ui.WarningLine(w))
	}
}

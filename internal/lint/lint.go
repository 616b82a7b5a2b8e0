// Package lint validates environment-configuration files the way an
// operator sees them: structural schema issues and semantic violations
// are errors, missing local resource files are warnings. URLs are never
// fetched here; remote references are checked at install time by the
// toolbox.
package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kennyg/vellum/internal/envconfig"
	"github.com/kennyg/vellum/internal/resolve"
)

// Report is the validation outcome for one configuration file.
type Report struct {
	Path     string   `json:"file"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`

	// Config is the parsed document when validation got that far.
	Config *envconfig.EnvironmentConfig `json:"-"`
}

// Valid reports whether the file passed validation. Warnings do not make
// a file invalid.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// File validates a single configuration file.
func File(path string) *Report {
	report := &Report{Path: path}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		report.errorf("invalid file extension %q: must be .yaml or .yml", ext)
		return report
	}

	data, err := os.ReadFile(path)
	if err != nil {
		report.errorf("%v", err)
		return report
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		report.errorf("YAML parsing error: %v", err)
		return report
	}
	if raw == nil {
		report.errorf("empty YAML document")
		return report
	}

	issues, err := envconfig.SchemaIssues(data)
	if err != nil {
		report.errorf("%v", err)
		return report
	}
	for _, issue := range issues {
		report.errorf("%s", issue)
	}
	if len(issues) > 0 {
		return report
	}

	cfg, err := envconfig.Parse(data)
	if err != nil {
		report.errorf("%v", err)
		return report
	}
	report.Config = cfg

	for _, err := range cfg.Validate() {
		report.errorf("%v", err)
	}
	if !report.Valid() {
		return report
	}

	checkReferences(report, cfg, path)
	return report
}

// checkReferences warns about referenced local files that do not exist.
// References resolving to URLs are skipped.
func checkReferences(report *Report, cfg *envconfig.EnvironmentConfig, path string) {
	origin, err := filepath.Abs(path)
	if err != nil {
		origin = path
	}

	locations, err := resolve.Config(cfg, origin)
	if err != nil {
		report.errorf("%v", err)
		return
	}

	for _, loc := range locations {
		if strings.HasPrefix(loc.Resolved, "http://") || strings.HasPrefix(loc.Resolved, "https://") {
			continue
		}
		if _, err := os.Stat(loc.Resolved); err != nil {
			if loc.Reference == loc.Resolved {
				report.warnf("referenced %s file not found: %s", loc.Kind, loc.Reference)
			} else {
				report.warnf("referenced %s file not found: %s (resolved to: %s)", loc.Kind, loc.Reference, loc.Resolved)
			}
		}
	}
}

// Dir validates every YAML file directly inside a directory, sorted by
// filename.
func Dir(dir string) ([]*Report, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	reports := make([]*Report, 0, len(files))
	for _, file := range files {
		reports = append(reports, File(file))
	}
	return reports, nil
}

// Summary aggregates directory validation results.
type Summary struct {
	Valid   int `json:"valid_count"`
	Invalid int `json:"invalid_count"`
	Total   int `json:"total"`
}

// Summarize counts valid and invalid reports.
func Summarize(reports []*Report) Summary {
	s := Summary{Total: len(reports)}
	for _, r := range reports {
		if r.Valid() {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	return s
}

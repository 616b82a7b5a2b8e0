// Package resolve maps resource references found in an environment
// configuration to their final fetchable locations. Resolution is a pure
// string computation: it never touches the network or the filesystem.
package resolve

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/kennyg/vellum/internal/envconfig"
)

// PathPlaceholder is the token in a base-url that gets replaced with the
// resource reference. A base-url without it gets the reference appended
// as a path segment instead.
const PathPlaceholder = "{path}"

var (
	// ErrInvalidReference indicates an empty or malformed resource reference.
	ErrInvalidReference = errors.New("invalid resource reference")

	// ErrUnresolvableBase indicates the config's own origin location is
	// empty or malformed, so relative references cannot be resolved.
	ErrUnresolvableBase = errors.New("unresolvable config origin")
)

// Resolve determines the fetchable location of a resource reference.
//
// Precedence, first match wins:
//  1. A full URL reference is returned unchanged.
//  2. A ~-prefixed reference expands to the user's home directory. This
//     happens even when baseURL is set: home paths never combine with a
//     remote base.
//  3. With baseURL set, the reference substitutes the {path} placeholder,
//     or is appended as a path segment when no placeholder is present.
//  4. With a URL configOrigin, the reference resolves relative to the
//     origin's directory using standard URL semantics.
//  5. Otherwise the reference is a local path: absolute paths are kept,
//     relative paths join the directory containing configOrigin.
func Resolve(reference, baseURL, configOrigin string) (string, error) {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", ErrInvalidReference)
	}

	if isURL(ref) {
		return ref, nil
	}

	if strings.HasPrefix(ref, "~") {
		return expandHome(ref)
	}

	if baseURL != "" {
		return joinBase(baseURL, ref), nil
	}

	if isURL(configOrigin) {
		return resolveAgainstURL(configOrigin, ref)
	}

	return resolveLocal(configOrigin, ref)
}

// isURL reports whether s is a fully qualified network URL.
func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// joinBase combines a base-url with a reference. The reference is placed
// positionally: an existing trailing path segment of the base is kept as-is.
func joinBase(baseURL, ref string) string {
	if strings.Contains(baseURL, PathPlaceholder) {
		return strings.ReplaceAll(baseURL, PathPlaceholder, ref)
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(ref, "/")
}

// resolveAgainstURL resolves ref relative to the directory component of a
// URL origin.
func resolveAgainstURL(origin, ref string) (string, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnresolvableBase, origin)
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidReference, ref)
	}
	return base.ResolveReference(rel).String(), nil
}

// resolveLocal resolves ref against the directory containing a local
// config origin.
func resolveLocal(origin, ref string) (string, error) {
	if strings.TrimSpace(origin) == "" {
		return "", fmt.Errorf("%w: empty origin", ErrUnresolvableBase)
	}
	if isAbsPath(ref) {
		return ref, nil
	}
	return filepath.Join(filepath.Dir(origin), ref), nil
}

// isAbsPath reports whether ref is an absolute local path, including
// Windows drive-letter paths written into configs authored on Windows.
func isAbsPath(ref string) bool {
	if filepath.IsAbs(ref) {
		return true
	}
	return len(ref) >= 2 && ref[1] == ':'
}

// expandHome expands a leading ~ to the user's home directory. A ~user
// form is kept as written, matching what the toolbox does when it cannot
// look up the named user.
func expandHome(ref string) (string, error) {
	if ref != "~" && !strings.HasPrefix(ref, "~/") {
		return ref, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: cannot determine home directory: %v", ErrUnresolvableBase, err)
	}
	if ref == "~" {
		return home, nil
	}
	return filepath.Join(home, ref[2:]), nil
}

// Kind identifies which configuration list a reference came from.
type Kind string

const (
	KindAgent        Kind = "agent"
	KindSlashCommand Kind = "slash-command"
	KindOutputStyle  Kind = "output-style"
	KindHook         Kind = "hook"
	KindSystemPrompt Kind = "system-prompt"
)

// Location pairs a reference with its resolved fetch location.
type Location struct {
	Kind      Kind   `json:"kind"`
	Reference string `json:"reference"`
	Resolved  string `json:"resolved"`
}

// Config resolves every resource reference in a parsed environment
// configuration. origin is the path or URL the document was loaded from.
func Config(cfg *envconfig.EnvironmentConfig, origin string) ([]Location, error) {
	var locations []Location

	add := func(kind Kind, refs []string) error {
		for _, ref := range refs {
			resolved, err := Resolve(ref, cfg.BaseURL, origin)
			if err != nil {
				return fmt.Errorf("%s %q: %w", kind, ref, err)
			}
			locations = append(locations, Location{Kind: kind, Reference: ref, Resolved: resolved})
		}
		return nil
	}

	if err := add(KindAgent, cfg.Agents); err != nil {
		return nil, err
	}
	if err := add(KindSlashCommand, cfg.SlashCommands); err != nil {
		return nil, err
	}
	if err := add(KindOutputStyle, cfg.OutputStyles); err != nil {
		return nil, err
	}
	if cfg.Hooks != nil {
		if err := add(KindHook, cfg.Hooks.Files); err != nil {
			return nil, err
		}
	}
	if cfg.CommandDefaults != nil && cfg.CommandDefaults.SystemPrompt != "" {
		if err := add(KindSystemPrompt, []string{cfg.CommandDefaults.SystemPrompt}); err != nil {
			return nil, err
		}
	}

	return locations, nil
}

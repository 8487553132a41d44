package model

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/mod/modfile"
)

type ManifestKind string

const (
	ManifestNone      ManifestKind = ""
	ManifestNPM       ManifestKind = "npm"
	ManifestPip       ManifestKind = "pip"
	ManifestCargo     ManifestKind = "cargo"
	ManifestGoModules ManifestKind = "go-modules"
	ManifestMaven     ManifestKind = "maven"
	ManifestGradle    ManifestKind = "gradle"
	ManifestBundler   ManifestKind = "bundler"
)

// Dependencies summarizes a repository's dependency manifest. List may be
// empty even when Count is nonzero for manifest kinds that are not deeply
// parsed; otherwise Count == len(List).
type Dependencies struct {
	Kind  ManifestKind
	Count int
	List  []string
}

// ManifestProbe pairs a well-known manifest path with its kind
type ManifestProbe struct {
	Path string
	Kind ManifestKind
}

// ManifestProbes is the fixed probe order. The first file found wins.
var ManifestProbes = []ManifestProbe{
	{"package.json", ManifestNPM},
	{"requirements.txt", ManifestPip},
	{"Cargo.toml", ManifestCargo},
	{"go.mod", ManifestGoModules},
	{"pom.xml", ManifestMaven},
	{"build.gradle", ManifestGradle},
	{"Gemfile", ManifestBundler},
}

// ParseManifest extracts dependency names from a manifest file. package.json,
// requirements.txt and go.mod are deeply parsed; other kinds are recorded by
// type only with zero count. A parse error means the file should be treated
// as if it was not found.
func ParseManifest(kind ManifestKind, content string) (*Dependencies, error) {
	switch kind {
	case ManifestNPM:
		return parsePackageJSON(content)
	case ManifestPip:
		return parseRequirements(content), nil
	case ManifestGoModules:
		return parseGoMod(content)
	default:
		return &Dependencies{Kind: kind}, nil
	}
}

func parsePackageJSON(content string) (*Dependencies, error) {
	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		return nil, goerr.Wrap(err, "failed to parse package.json")
	}

	merged := map[string]struct{}{}
	for name := range manifest.Dependencies {
		merged[name] = struct{}{}
	}
	for name := range manifest.DevDependencies {
		merged[name] = struct{}{}
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Dependencies{Kind: ManifestNPM, Count: len(names), List: names}, nil
}

func parseRequirements(content string) *Dependencies {
	var names []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return &Dependencies{Kind: ManifestPip, Count: len(names), List: names}
}

func parseGoMod(content string) (*Dependencies, error) {
	f, err := modfile.Parse("go.mod", []byte(content), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse go.mod")
	}

	names := make([]string, 0, len(f.Require))
	for _, req := range f.Require {
		names = append(names, req.Mod.Path)
	}

	return &Dependencies{Kind: ManifestGoModules, Count: len(names), List: names}, nil
}

package config

// document is the on-disk TOML shape of hakari.toml. DTOs are kept separate
// from the domain record so the file format can evolve without touching
// domain types.
type document struct {
	HakariPackage     string      `toml:"hakari-package"`
	Resolver          string      `toml:"resolver"`
	Platforms         []string    `toml:"platforms,omitempty"`
	ExactVersions     *bool       `toml:"exact-versions,omitempty"`
	TraversalExcludes excludesDTO `toml:"traversal-excludes,omitempty"`
}

type excludesDTO struct {
	WorkspaceMembers []string        `toml:"workspace-members,omitempty"`
	ThirdParty       []thirdPartyDTO `toml:"third-party,omitempty"`
}

type thirdPartyDTO struct {
	Name string `toml:"name"`
	Git  string `toml:"git,omitempty"`
	Rev  string `toml:"rev,omitempty"`
}

// knownKeys are the top-level keys this loader interprets. Anything else is
// tolerated for forward compatibility and surfaced as a debug note.
var knownKeys = map[string]struct{}{
	"hakari-package":     {},
	"resolver":           {},
	"platforms":          {},
	"exact-versions":     {},
	"traversal-excludes": {},
}

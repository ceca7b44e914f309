package domain

// Workspace is the scanned state of a multi-module workspace: the directory
// holding go.work, the set of member modules it lists, and the root module
// path used to derive the aggregation module's own path.
type Workspace struct {
	// Root is the absolute directory containing go.work.
	Root string

	// ModulePath is the module path of the workspace's primary module, used
	// as the prefix for the generated aggregation module. Empty when the
	// workspace root carries no go.mod of its own.
	ModulePath string

	// Members are the modules listed by go.work use directives.
	Members []Member
}

// Member returns the member with the given module path, or nil.
func (w *Workspace) Member(path string) *Member {
	for i := range w.Members {
		if w.Members[i].Path.String() == path {
			return &w.Members[i]
		}
	}
	return nil
}

// Member is a single workspace member module.
type Member struct {
	// Path is the member's module path.
	Path InternedString

	// Dir is the member's directory relative to the workspace root.
	Dir InternedString

	// Requirements are the member's direct third-party requirements.
	Requirements []Requirement
}

// Requirement is a single dependency edge from a member to an external module.
type Requirement struct {
	// ModulePath is the required module's path.
	ModulePath InternedString

	// Version is the required version, in go.mod "v1.2.3" form.
	Version string

	// Source is set when the member replaces the module with a git
	// repository pinned to a revision.
	Source Source
}

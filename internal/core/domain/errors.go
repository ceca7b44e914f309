package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no hakari.toml is found between the
	// working directory and the filesystem root.
	ErrConfigNotFound = zerr.New("configuration not found")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration")

	// ErrConfigParseFailed is returned when the configuration file is not valid TOML.
	ErrConfigParseFailed = zerr.New("failed to parse configuration")

	// ErrMissingPackageName is returned when hakari-package is empty or absent.
	ErrMissingPackageName = zerr.New("hakari-package is required")

	// ErrUnknownResolver is returned when resolver is not "1" or "2".
	ErrUnknownResolver = zerr.New("unknown resolver version")

	// ErrDuplicateExclude is returned when an exclusion list names the same
	// package twice.
	ErrDuplicateExclude = zerr.New("duplicate exclusion entry")

	// ErrRevRequired is returned when a third-party exclusion pins a git
	// source without a revision.
	ErrRevRequired = zerr.New("git exclusion requires a rev")

	// ErrInvalidPlatformTriple is returned when a platform string does not
	// parse as arch-vendor-os[-abi].
	ErrInvalidPlatformTriple = zerr.New("invalid platform triple")

	// ErrWorkspaceNotFound is returned when no go.work is found between the
	// working directory and the filesystem root.
	ErrWorkspaceNotFound = zerr.New("workspace not found")

	// ErrManifestParseFailed is returned when a member go.mod cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse member manifest")

	// ErrOutputStale is returned by check when the generated aggregation
	// module no longer matches the computed plan.
	ErrOutputStale = zerr.New("aggregation module is out of date")

	// ErrVersionDivergence is returned by check under exact-versions when a
	// traversed member requires a version other than the unified pin.
	ErrVersionDivergence = zerr.New("member requirements diverge from unified versions")

	// ErrModuleNotInPlan is returned by explain when the requested module
	// path is neither unified nor skipped.
	ErrModuleNotInPlan = zerr.New("module does not appear in the unification plan")

	// ErrConfigExists is returned by init when a configuration file is
	// already present.
	ErrConfigExists = zerr.New("configuration file already exists")
)

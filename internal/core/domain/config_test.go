package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/unify/internal/core/domain"
)

func TestParseResolverVersion(t *testing.T) {
	v, err := domain.ParseResolverVersion("1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != domain.ResolverV1 {
		t.Errorf("expected ResolverV1, got %v", v)
	}

	v, err = domain.ParseResolverVersion("2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != domain.ResolverV2 {
		t.Errorf("expected ResolverV2, got %v", v)
	}

	for _, bad := range []string{"", "0", "3", "two", " 2"} {
		if _, err := domain.ParseResolverVersion(bad); !errors.Is(err, domain.ErrUnknownResolver) {
			t.Errorf("ParseResolverVersion(%q): expected ErrUnknownResolver, got %v", bad, err)
		}
	}
}

func TestResolverVersion_String(t *testing.T) {
	if got := domain.ResolverV1.String(); got != "1" {
		t.Errorf("expected %q, got %q", "1", got)
	}
	if got := domain.ResolverV2.String(); got != "2" {
		t.Errorf("expected %q, got %q", "2", got)
	}
}

func TestTraversalExcludes_ExcludesMember(t *testing.T) {
	ex := domain.TraversalExcludes{
		WorkspaceMembers: domain.NewInternedStrings([]string{"example.com/ws/bench", "example.com/ws/tools"}),
	}

	if !ex.ExcludesMember("example.com/ws/bench") {
		t.Error("expected bench to be excluded")
	}
	if ex.ExcludesMember("example.com/ws/server") {
		t.Error("did not expect server to be excluded")
	}
}

func TestTraversalExcludes_ExcludesModule_NameOnly(t *testing.T) {
	ex := domain.TraversalExcludes{
		ThirdParty: []domain.ThirdPartyExclude{
			{Name: "github.com/example/criterion"},
		},
	}

	// A name-only entry excludes the module regardless of source.
	if !ex.ExcludesModule("github.com/example/criterion", domain.Source{}) {
		t.Error("expected registry source to be excluded")
	}
	pinned := domain.Source{Git: "https://github.com/example/criterion", Rev: "abc123"}
	if !ex.ExcludesModule("github.com/example/criterion", pinned) {
		t.Error("expected pinned source to be excluded")
	}
	if ex.ExcludesModule("github.com/example/other", domain.Source{}) {
		t.Error("did not expect other module to be excluded")
	}
}

func TestTraversalExcludes_ExcludesModule_PinnedSource(t *testing.T) {
	ex := domain.TraversalExcludes{
		ThirdParty: []domain.ThirdPartyExclude{
			{
				Name: "github.com/azure/azure-core",
				Git:  "https://github.com/azure/azure-sdk",
				Rev:  "15b58a1b5a31a6ea8e951ded545cea71cb2658a1",
			},
		},
	}

	match := domain.Source{
		Git: "https://github.com/azure/azure-sdk",
		Rev: "15b58a1b5a31a6ea8e951ded545cea71cb2658a1",
	}
	if !ex.ExcludesModule("github.com/azure/azure-core", match) {
		t.Error("expected exact pinned source to be excluded")
	}

	// Abbreviated revisions still match.
	abbrev := domain.Source{Git: "https://github.com/azure/azure-sdk", Rev: "15b58a1b5a31"}
	if !ex.ExcludesModule("github.com/azure/azure-core", abbrev) {
		t.Error("expected abbreviated revision to match")
	}

	// A pinned entry does not exclude the module from the default registry.
	if ex.ExcludesModule("github.com/azure/azure-core", domain.Source{}) {
		t.Error("pinned entry must not exclude the registry source")
	}

	// A different revision of the same repository is not excluded.
	other := domain.Source{Git: "https://github.com/azure/azure-sdk", Rev: "deadbeef"}
	if ex.ExcludesModule("github.com/azure/azure-core", other) {
		t.Error("different revision must not be excluded")
	}
}

func TestThirdPartyExclude_Pinned(t *testing.T) {
	if (domain.ThirdPartyExclude{Name: "a"}).Pinned() {
		t.Error("name-only entry must not be pinned")
	}
	if !(domain.ThirdPartyExclude{Name: "a", Git: "https://x", Rev: "r"}).Pinned() {
		t.Error("git entry must be pinned")
	}
}

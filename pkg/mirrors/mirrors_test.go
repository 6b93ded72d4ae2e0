package mirrors

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	articleURL = "https://medium.com/@jane/my-post-abc123"
	slug       = "my-post-abc123"
)

func TestBuildURLStrategies(t *testing.T) {
	reg := Default()

	cases := []struct {
		mirror string
		want   string
	}{
		{"freedium", "https://freedium.cfd/" + articleURL},
		{"readmedium", "https://readmedium.com/en/" + slug},
		{"archive", "https://archive.ph/newest/" + articleURL},
	}
	for _, tc := range cases {
		if got := reg.BuildURL(articleURL, slug, tc.mirror); got != tc.want {
			t.Errorf("BuildURL(%s) = %q, want %q", tc.mirror, got, tc.want)
		}
	}
}

func TestBuildURLUnknownMirrorIsNoOp(t *testing.T) {
	reg := Default()
	if got := reg.BuildURL(articleURL, slug, "nope"); got != articleURL {
		t.Fatalf("expected original URL for unknown mirror, got %q", got)
	}
	if reg.Has("nope") {
		t.Fatal("Has returned true for unknown mirror")
	}
}

func TestDefaultOrder(t *testing.T) {
	order := Default().DefaultOrder()
	want := []string{"freedium", "readmedium", "archive"}
	if len(order) != len(want) {
		t.Fatalf("expected %d mirrors, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestLoadRegistryFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirrors.yaml")
	content := `mirrors:
  - name: FancyMirror
    base_url: https://fancy.example/
    strategy: slug
  - name: plain
    base_url: https://plain.example/read/
    strategy: prefix_url
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Names are normalized to lower case.
	if got := reg.BuildURL(articleURL, slug, "fancymirror"); got != "https://fancy.example/"+slug {
		t.Errorf("slug strategy built %q", got)
	}
	if got := reg.BuildURL(articleURL, slug, "plain"); got != "https://plain.example/read/"+articleURL {
		t.Errorf("prefix_url strategy built %q", got)
	}
}

func TestNewRegistryValidation(t *testing.T) {
	cases := []struct {
		name    string
		entries []Mirror
	}{
		{"empty", nil},
		{"missing name", []Mirror{{BaseURL: "https://x/", Strategy: StrategySlug}}},
		{"missing base url", []Mirror{{Name: "m", Strategy: StrategySlug}}},
		{"unknown strategy", []Mirror{{Name: "m", BaseURL: "https://x/", Strategy: "teleport"}}},
		{"duplicate name", []Mirror{
			{Name: "m", BaseURL: "https://x/", Strategy: StrategySlug},
			{Name: "M", BaseURL: "https://y/", Strategy: StrategySlug},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRegistry(tc.entries); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

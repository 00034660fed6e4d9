package genomepull

import (
	"context"
	"testing"

	"genomepull/config"
	"genomepull/internal/entrez"

	"github.com/google/go-cmp/cmp"
)

// The same assembly linked from two genome entries is kept once, in
// first-seen order.
func Test_resolveAssemblies_dedup(t *testing.T) {
	api := &fakeEntrez{
		link: func(fromDB, toDB, id string) ([]entrez.LinkSet, error) {
			links := map[string][]string{
				"g1": {"asm2"},
				"g2": {"asm2", "asm1"},
			}
			return []entrez.LinkSet{{Name: "genome_assembly", IDs: links[id]}}, nil
		},
	}

	p := New("Testgenus", &config.Config{}, api)

	ids, err := p.resolveAssemblies(context.Background(), []string{"g1", "g2"})
	if err != nil {
		t.Fatalf("resolveAssemblies() error = %v", err)
	}
	if diff := cmp.Diff([]string{"asm2", "asm1"}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

// A genome entry with no assembly links contributes nothing.
func Test_resolveAssemblies_empty(t *testing.T) {
	api := &fakeEntrez{
		link: func(fromDB, toDB, id string) ([]entrez.LinkSet, error) {
			return nil, nil
		},
	}

	p := New("Testgenus", &config.Config{}, api)

	ids, err := p.resolveAssemblies(context.Background(), []string{"g1"})
	if err != nil {
		t.Fatalf("resolveAssemblies() error = %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want none", ids)
	}
}

package idgen

import (
	"strings"
	"testing"
)

func TestNewUsesPrefix(t *testing.T) {
	id, err := New(PrefixCampaign)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !strings.HasPrefix(id, "cmp-") {
		t.Errorf("expected cmp- prefix, got %q", id)
	}
	if len(id) != len(PrefixCampaign)+Length {
		t.Errorf("expected length %d, got %d", len(PrefixCampaign)+Length, len(id))
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := Must(PrefixOrganization)
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

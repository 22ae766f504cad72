package services

import (
	"testing"

	"lunadocs/internal/models"

	"github.com/google/go-cmp/cmp"
)

func TestNavigationService_Build(t *testing.T) {
	sections := []*models.Section{
		{Title: "Zeta", Slug: "zeta", GroupName: "Zed"},
		{Title: "Quick Start", Slug: "quickstart", GroupName: "Guides"},
		{Title: "Intro", Slug: "intro", GroupName: "General"},
		{Title: "Alpha", Slug: "alpha", GroupName: "Appendix"},
		{Title: "Streaming", Slug: "streaming", GroupName: "Guides", IsSubItem: true},
		{Title: "Ungrouped", Slug: "ungrouped"},
		{Title: "Curl", Slug: "curl", GroupName: "Examples"},
		{Title: "Auth", Slug: "auth", GroupName: "API"},
	}

	got := NewNavigationService().Build(sections)

	want := []models.NavGroup{
		{Title: "General", Items: []models.NavItem{
			{ID: "intro", Label: "Intro"},
			{ID: "ungrouped", Label: "Ungrouped"},
		}},
		{Title: "Guides", Items: []models.NavItem{
			{ID: "quickstart", Label: "Quick Start"},
			{ID: "streaming", Label: "Streaming", IsSubItem: true},
		}},
		{Title: "API", Items: []models.NavItem{{ID: "auth", Label: "Auth"}}},
		{Title: "Examples", Items: []models.NavItem{{ID: "curl", Label: "Curl"}}},
		{Title: "Appendix", Items: []models.NavItem{{ID: "alpha", Label: "Alpha"}}},
		{Title: "Zed", Items: []models.NavItem{{ID: "zeta", Label: "Zeta"}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("navigation mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigationService_Empty(t *testing.T) {
	got := NewNavigationService().Build(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

package services

import (
	"sort"

	"lunadocs/internal/models"
)

// groupOrder lists the groups that lead the sidebar; others follow alphabetically.
var groupOrder = []string{"General", "Guides", "API", "Examples"}

type NavigationService struct{}

func NewNavigationService() *NavigationService {
	return &NavigationService{}
}

// Build groups sections for the sidebar. Sections must already be in
// order_index order; items keep that order inside each group.
func (n *NavigationService) Build(sections []*models.Section) []models.NavGroup {
	byGroup := map[string][]models.NavItem{}
	var names []string
	for _, s := range sections {
		g := s.GroupName
		if g == "" {
			g = models.DefaultGroup
		}
		if _, seen := byGroup[g]; !seen {
			names = append(names, g)
		}
		byGroup[g] = append(byGroup[g], models.NavItem{ID: s.Slug, Label: s.Title, IsSubItem: s.IsSubItem})
	}

	sort.SliceStable(names, func(i, j int) bool {
		ri, rj := groupRank(names[i]), groupRank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})

	out := make([]models.NavGroup, 0, len(names))
	for _, g := range names {
		out = append(out, models.NavGroup{Title: g, Items: byGroup[g]})
	}
	return out
}

func groupRank(name string) int {
	for i, g := range groupOrder {
		if g == name {
			return i
		}
	}
	return len(groupOrder)
}

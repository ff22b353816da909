package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() []MenuItem {
	return []MenuItem{
		{ID: "home", Label: "Home", Route: "/admin"},
		{
			ID: "jobs", Label: "Jobs",
			Children: []MenuItem{
				{ID: "jobs-moderation", Label: "Moderation", Route: "/admin/jobs/moderation"},
				{
					ID: "jobs-more", Label: "More",
					Children: []MenuItem{
						{ID: "jobs-badges", Label: "Badges", Route: "/admin/jobs/badges"},
					},
				},
			},
		},
	}
}

func TestFindBreadcrumbs(t *testing.T) {
	tests := []struct {
		name       string
		route      string
		wantIDs    []string
		wantParent string
	}{
		{
			name:       "top level route",
			route:      "/admin",
			wantIDs:    []string{"home"},
			wantParent: "",
		},
		{
			name:       "nested leaf",
			route:      "/admin/jobs/moderation",
			wantIDs:    []string{"jobs", "jobs-moderation"},
			wantParent: "",
		},
		{
			name:       "deeply nested leaf",
			route:      "/admin/jobs/badges",
			wantIDs:    []string{"jobs", "jobs-more", "jobs-badges"},
			wantParent: "",
		},
		{
			name:    "unknown route",
			route:   "/admin/nowhere",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trail := FindBreadcrumbs(testMenu(), tt.route)

			var ids []string
			for _, b := range trail {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantParent, ParentRoute(trail))
		})
	}
}

func TestParentRoute_WithRoutedParent(t *testing.T) {
	menu := []MenuItem{
		{
			ID: "jobs", Label: "Jobs", Route: "/admin/jobs",
			Children: []MenuItem{
				{ID: "jobs-moderation", Label: "Moderation", Route: "/admin/jobs/moderation"},
			},
		},
	}

	trail := FindBreadcrumbs(menu, "/admin/jobs/moderation")
	require.Len(t, trail, 2)
	assert.Equal(t, "/admin/jobs", ParentRoute(trail))
}

func TestAncestorIDs(t *testing.T) {
	trail := FindBreadcrumbs(testMenu(), "/admin/jobs/badges")
	require.Len(t, trail, 3)
	assert.Equal(t, []string{"jobs", "jobs-more"}, AncestorIDs(trail))

	assert.Nil(t, AncestorIDs(FindBreadcrumbs(testMenu(), "/admin")))
	assert.Nil(t, AncestorIDs(nil))
}

func TestDefaultMenuRoutesAreUnique(t *testing.T) {
	seen := map[string]bool{}

	var walk func(items []MenuItem)
	walk = func(items []MenuItem) {
		for _, item := range items {
			if item.Route != "" {
				assert.False(t, seen[item.Route], "duplicate route %s", item.Route)
				seen[item.Route] = true
			}
			walk(item.Children)
		}
	}
	walk(DefaultMenu())

	assert.NotEmpty(t, seen)
}

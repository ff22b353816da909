package shell

// MenuItem is one node of the static admin navigation tree.
type MenuItem struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Icon     string     `json:"icon,omitempty"`
	Route    string     `json:"route,omitempty"`
	Children []MenuItem `json:"children,omitempty"`
}

// Breadcrumb is one step of the trail from the menu root to the active
// route.
type Breadcrumb struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Route string `json:"route,omitempty"`
}

// DefaultMenu is the back-office navigation tree. Branch nodes carry no
// route; leaves map to admin pages.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{
			ID: "dashboard", Label: "Dashboard", Icon: "layout-dashboard",
			Route: "/admin",
		},
		{
			ID: "jobs", Label: "Jobs", Icon: "briefcase",
			Children: []MenuItem{
				{ID: "jobs-moderation", Label: "Moderation", Route: "/admin/jobs/moderation"},
				{ID: "jobs-badges", Label: "Badges", Route: "/admin/jobs/badges"},
				{ID: "jobs-list", Label: "All jobs", Route: "/admin/jobs"},
			},
		},
		{
			ID: "users", Label: "Users", Icon: "users",
			Children: []MenuItem{
				{ID: "users-list", Label: "Accounts", Route: "/admin/users"},
				{ID: "users-services", Label: "Service access", Route: "/admin/users/services"},
			},
		},
		{
			ID: "billing", Label: "Billing", Icon: "credit-card",
			Children: []MenuItem{
				{ID: "billing-credits", Label: "Credits", Route: "/admin/credits"},
				{ID: "billing-packages", Label: "Credit packages", Route: "/admin/credit-packages"},
				{ID: "billing-premium", Label: "Premium subscriptions", Route: "/admin/premium"},
				{ID: "billing-payments", Label: "Pending payments", Route: "/admin/payments"},
			},
		},
	}
}

// FindBreadcrumbs walks the tree depth-first and returns the trail from
// the root to the item whose route matches. An unknown route yields an
// empty trail.
func FindBreadcrumbs(menu []MenuItem, route string) []Breadcrumb {
	for _, item := range menu {
		if item.Route == route {
			return []Breadcrumb{crumb(item)}
		}
		if len(item.Children) == 0 {
			continue
		}
		if trail := FindBreadcrumbs(item.Children, route); trail != nil {
			return append([]Breadcrumb{crumb(item)}, trail...)
		}
	}
	return nil
}

// ParentRoute returns the route of the second-to-last breadcrumb, used by
// the back button. Empty when the trail is shorter than two steps or the
// parent is a routeless branch node.
func ParentRoute(trail []Breadcrumb) string {
	if len(trail) < 2 {
		return ""
	}
	return trail[len(trail)-2].Route
}

// AncestorIDs returns the branch ids to auto-expand for the active route:
// every node on the trail except the leaf itself.
func AncestorIDs(trail []Breadcrumb) []string {
	if len(trail) < 2 {
		return nil
	}

	ids := make([]string, 0, len(trail)-1)
	for _, b := range trail[:len(trail)-1] {
		ids = append(ids, b.ID)
	}
	return ids
}

func crumb(item MenuItem) Breadcrumb {
	return Breadcrumb{ID: item.ID, Label: item.Label, Route: item.Route}
}

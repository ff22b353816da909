package shell

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jobdeck/admin-be/shared/redisstore"
)

// Preferences is the per-admin shell state persisted across sessions,
// so the sidebar looks the same from any browser.
type Preferences struct {
	ExpandedMenuIDs  []string `json:"expanded_menu_ids"`
	SidebarCollapsed bool     `json:"sidebar_collapsed"`
}

// PrefStore persists shell preferences keyed by admin identity.
type PrefStore struct {
	redis *redisstore.Client
}

func NewPrefStore(redis *redisstore.Client) *PrefStore {
	return &PrefStore{redis: redis}
}

func prefKey(adminID string) string {
	return "admin:shell:prefs:" + adminID
}

// Load returns the stored preferences for an admin; an admin who has
// never saved any gets the zero value.
func (p *PrefStore) Load(ctx context.Context, adminID string) (*Preferences, error) {
	raw, err := p.redis.Get(ctx, prefKey(adminID))
	if err != nil {
		if redisstore.IsNil(err) {
			return &Preferences{}, nil
		}
		return nil, fmt.Errorf("failed to load shell preferences: %w", err)
	}

	var prefs Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return nil, fmt.Errorf("failed to decode shell preferences: %w", err)
	}
	return &prefs, nil
}

// Save writes the preferences for an admin. Written on every change, no
// TTL.
func (p *PrefStore) Save(ctx context.Context, adminID string, prefs *Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode shell preferences: %w", err)
	}

	if err := p.redis.Set(ctx, prefKey(adminID), string(raw), 0); err != nil {
		return fmt.Errorf("failed to save shell preferences: %w", err)
	}
	return nil
}

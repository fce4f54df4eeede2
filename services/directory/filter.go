package directory

import (
	"strings"

	"servicedirectory/models"
)

// Criteria is the listing page's filter state.
type Criteria struct {
	Search      string // Case-insensitive substring of name or description.
	ServiceType string // Exact category tag; empty means all.
}

func (c Criteria) IsZero() bool {
	return c.Search == "" && c.ServiceType == ""
}

// Matches reports whether p satisfies both the search term and the category selector.
func (c Criteria) Matches(p models.ServiceProvider) bool {
	if c.ServiceType != "" && p.ServiceType != c.ServiceType {
		return false
	}
	term := strings.ToLower(c.Search)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

// FilterProviders returns the providers matching criteria in their original
// order. The input slice is never modified.
func FilterProviders(providers []models.ServiceProvider, criteria Criteria) []models.ServiceProvider {
	filtered := make([]models.ServiceProvider, 0, len(providers))
	if criteria.IsZero() {
		return append(filtered, providers...)
	}
	for _, p := range providers {
		if criteria.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ServiceTypes derives the category options from the providers: every
// non-empty tag once, in first-seen order. The empty tag is left out
// because it would collide with "All Services".
func ServiceTypes(providers []models.ServiceProvider) []string {
	seen := make(map[string]struct{}, len(providers))
	types := make([]string, 0)
	for _, p := range providers {
		if p.ServiceType == "" {
			continue
		}
		if _, ok := seen[p.ServiceType]; ok {
			continue
		}
		seen[p.ServiceType] = struct{}{}
		types = append(types, p.ServiceType)
	}
	return types
}

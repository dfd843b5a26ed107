package model

import (
	"slices"
	"strings"
	"time"
)

// ChecklistItem is one inspected part on a product. PartName is a snapshot
// of the template label at creation time; renaming the template later does
// not rename existing products' items.
type ChecklistItem struct {
	PartName   string `json:"part_name"`
	Present    bool   `json:"present"`
	IsDamaged  bool   `json:"is_damaged"`
	DamageNote string `json:"damage_note"`
}

// Product represents one catalogued vehicle part with its inspection checklist.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	VehicleName string          `json:"vehicle_name"`
	ImageMime   string          `json:"image_mime,omitempty"`
	Checklist   []ChecklistItem `json:"checklist,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StatusTag is a derived product status. A product can be both has-damage
// and missing-parts at once; complete never combines with either.
type StatusTag string

// Status tags.
const (
	StatusComplete     StatusTag = "complete"
	StatusHasDamage    StatusTag = "has-damage"
	StatusMissingParts StatusTag = "missing-parts"
)

// FilterAll is the status filter value that disables status filtering.
const FilterAll = "all"

// DeriveStatus computes a product's status tags from its checklist. Tags are
// recomputed on every read and never stored.
//
// A damaged item with an empty damage note does not count toward has-damage.
func DeriveStatus(checklist []ChecklistItem) []StatusTag {
	var missing, damaged bool
	for _, item := range checklist {
		if !item.Present {
			missing = true
		}
		if item.IsDamaged && item.DamageNote != "" {
			damaged = true
		}
	}

	tags := make([]StatusTag, 0, 2)
	if missing {
		tags = append(tags, StatusMissingParts)
	}
	if damaged {
		tags = append(tags, StatusHasDamage)
	}
	if !missing && !damaged {
		tags = append(tags, StatusComplete)
	}
	return tags
}

// Status returns the product's derived status tags.
func (p *Product) Status() []StatusTag {
	return DeriveStatus(p.Checklist)
}

// MatchesFilter reports whether the product passes the list view's filters:
// a case-insensitive substring match on name or vehicle name, and a status
// filter matched against the derived tag set. An empty or "all" status, or
// an unrecognized one, disables status filtering.
func (p *Product) MatchesFilter(search, status string) bool {
	if q := strings.ToLower(search); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.VehicleName), q) {
			return false
		}
	}

	switch status {
	case string(StatusComplete), string(StatusHasDamage), string(StatusMissingParts):
		return slices.Contains(p.Status(), StatusTag(status))
	default:
		return true
	}
}

// FilterProducts returns the products passing MatchesFilter, preserving order.
func FilterProducts(products []Product, search, status string) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.MatchesFilter(search, status) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ProductPatch is a sparse update to a product. Nil fields leave the
// existing value untouched; ID and timestamps are never patchable.
type ProductPatch struct {
	Name        *string
	VehicleName *string
	Image       []byte
	ImageMime   string
	Checklist   []ChecklistItem
}

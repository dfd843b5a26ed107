package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/autotradeslanka/partscat/internal/model"
)

// demoProducts mirrors the sample catalog the original admin tool shipped
// with. Overrides are keyed by zero-based checklist position.
var demoProducts = []struct {
	name      string
	vehicle   string
	overrides map[int]model.ChecklistItem
}{
	{
		name:    "Door Panel Set",
		vehicle: "Mitsubishi L200 2021",
		overrides: map[int]model.ChecklistItem{
			6:  {Present: false},
			13: {Present: false},
			20: {Present: false},
		},
	},
	{
		name:    "Headlight Set",
		vehicle: "Nissan Navara 2019",
		overrides: map[int]model.ChecklistItem{
			2: {Present: true, IsDamaged: true, DamageNote: "Crack on left tail light lens"},
			5: {Present: true, IsDamaged: true, DamageNote: "Wiper blade worn out"},
		},
	},
	{
		name:      "Front Bumper Assembly",
		vehicle:   "Toyota Hilux 2020",
		overrides: nil,
	},
	{
		name:    "Tail Light Assembly",
		vehicle: "Isuzu D-Max 2022",
		overrides: map[int]model.ChecklistItem{
			1:  {Present: true, IsDamaged: true, DamageNote: "Minor scratch on park light"},
			10: {Present: false},
		},
	},
}

// SeedDemo fills an empty catalog with sample products so a fresh instance
// has something to show. No-op when any products already exist. Seeding
// goes through CreateProduct, so the activity feed fills naturally.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("counting products: %w", err)
	}
	if count > 0 {
		return nil
	}

	template, err := GetChecklistTemplate(ctx, db)
	if err != nil {
		return err
	}

	for _, demo := range demoProducts {
		checklist := model.NewChecklist(template)
		for pos, override := range demo.overrides {
			if pos < 0 || pos >= len(checklist) {
				continue
			}
			override.PartName = checklist[pos].PartName
			checklist[pos] = override
		}

		if _, err := CreateProduct(ctx, db, demo.name, demo.vehicle, nil, "", checklist); err != nil {
			return fmt.Errorf("seeding product %q: %w", demo.name, err)
		}
	}
	return nil
}

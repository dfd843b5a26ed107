package store

import (
	"context"
	"testing"

	"github.com/autotradeslanka/partscat/internal/db"
	"github.com/autotradeslanka/partscat/internal/model"
)

func testChecklist() []model.ChecklistItem {
	return []model.ChecklistItem{
		{PartName: "Front Grille", Present: true},
		{PartName: "Park Light", Present: true},
		{PartName: "Wiper Blade", Present: true},
	}
}

func TestCreateProduct(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, err := CreateProduct(ctx, database, "Front Bumper Assembly", "Toyota Hilux 2020", nil, "", testChecklist())
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if p.ID == "" {
		t.Error("expected a generated id")
	}
	if p.Name != "Front Bumper Assembly" || p.VehicleName != "Toyota Hilux 2020" {
		t.Errorf("unexpected product fields: %+v", p)
	}
	if !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Errorf("expected createdAt == updatedAt, got %v and %v", p.CreatedAt, p.UpdatedAt)
	}
	if len(p.Checklist) != 3 {
		t.Fatalf("expected 3 checklist items, got %d", len(p.Checklist))
	}
	if p.Checklist[0].PartName != "Front Grille" {
		t.Errorf("checklist order not preserved: %+v", p.Checklist)
	}

	products, err := ListProducts(ctx, database)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].ID != p.ID {
		t.Errorf("expected new product at index 0")
	}

	activities, err := ListActivities(ctx, database, 0)
	if err != nil {
		t.Fatalf("ListActivities: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities))
	}
	if activities[0].Type != model.ActivityCreated || activities[0].ProductName != "Front Bumper Assembly" {
		t.Errorf("unexpected activity: %+v", activities[0])
	}
}

func TestListProductsNewestFirst(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateProduct(ctx, database, "First", "Toyota Hilux", nil, "", testChecklist())
	CreateProduct(ctx, database, "Second", "Nissan Navara", nil, "", testChecklist())
	CreateProduct(ctx, database, "Third", "Isuzu D-Max", nil, "", testChecklist())

	products, err := ListProducts(ctx, database)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	for i, want := range []string{"Third", "Second", "First"} {
		if products[i].Name != want {
			t.Errorf("position %d: expected %q, got %q", i, want, products[i].Name)
		}
	}
}

func TestUpdateProductMergesPatch(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, database, "Headlight Set", "Nissan Navara 2019", nil, "", testChecklist())

	name := "Headlight Set (LH)"
	if err := UpdateProduct(ctx, database, p.ID, model.ProductPatch{Name: &name}); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	got, _ := GetProduct(ctx, database, p.ID)
	if got.Name != "Headlight Set (LH)" {
		t.Errorf("expected patched name, got %q", got.Name)
	}
	if got.VehicleName != "Nissan Navara 2019" {
		t.Errorf("unpatched field must be untouched, got %q", got.VehicleName)
	}
	if len(got.Checklist) != 3 {
		t.Errorf("checklist must be untouched, got %d items", len(got.Checklist))
	}
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Errorf("updatedAt went backwards: created %v, updated %v", got.CreatedAt, got.UpdatedAt)
	}

	// The edit activity carries the new name.
	activities, _ := ListActivities(ctx, database, 1)
	if activities[0].Type != model.ActivityEdited || activities[0].ProductName != "Headlight Set (LH)" {
		t.Errorf("unexpected activity: %+v", activities[0])
	}
}

func TestUpdateProductChecklist(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, database, "Tail Light Assembly", "Isuzu D-Max", nil, "", testChecklist())

	checklist := testChecklist()
	checklist[1].Present = false
	if err := UpdateProduct(ctx, database, p.ID, model.ProductPatch{Checklist: checklist}); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	got, _ := GetProduct(ctx, database, p.ID)
	if got.Checklist[1].Present {
		t.Error("expected item 1 to be absent after update")
	}
}

// Update on an unknown id is a silent no-op: nothing changes, no activity.
func TestUpdateProductUnknownID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateProduct(ctx, database, "Door Panel Set", "Mitsubishi L200", nil, "", testChecklist())

	name := "Foo"
	if err := UpdateProduct(ctx, database, "no-such-id", model.ProductPatch{Name: &name}); err != nil {
		t.Fatalf("UpdateProduct on unknown id: %v", err)
	}

	products, _ := ListProducts(ctx, database)
	if len(products) != 1 || products[0].Name != "Door Panel Set" {
		t.Errorf("store must be unchanged, got %+v", products)
	}

	activities, _ := ListActivities(ctx, database, 0)
	if len(activities) != 1 {
		t.Errorf("expected only the create activity, got %d", len(activities))
	}
}

func TestDeleteProduct(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, database, "Front Bumper Assembly", "Toyota Hilux", nil, "", testChecklist())

	if err := DeleteProduct(ctx, database, p.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	got, err := GetProduct(ctx, database, p.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got != nil {
		t.Error("expected product to be gone")
	}

	// Second delete is a no-op; still exactly one deleted activity, and the
	// entry keeps the name even though the product is gone.
	if err := DeleteProduct(ctx, database, p.ID); err != nil {
		t.Fatalf("second DeleteProduct: %v", err)
	}

	activities, _ := ListActivities(ctx, database, 0)
	var deleted int
	for _, a := range activities {
		if a.Type == model.ActivityDeleted {
			deleted++
			if a.ProductName != "Front Bumper Assembly" {
				t.Errorf("expected denormalized name, got %q", a.ProductName)
			}
		}
	}
	if deleted != 1 {
		t.Errorf("expected exactly 1 deleted activity, got %d", deleted)
	}
}

func TestProductImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, database, "Photo Product", "Toyota Hilux", []byte("fake image data"), "image/jpeg", testChecklist())

	data, mime, err := GetProductImage(ctx, database, p.ID)
	if err != nil {
		t.Fatalf("GetProductImage: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("expected image data, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}

	// Patching the image replaces it.
	if err := UpdateProduct(ctx, database, p.ID, model.ProductPatch{Image: []byte("new data"), ImageMime: "image/png"}); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	data, mime, _ = GetProductImage(ctx, database, p.ID)
	if string(data) != "new data" || mime != "image/png" {
		t.Errorf("expected replaced image, got %q %q", string(data), mime)
	}
}

func TestActivitiesNewestFirstWithLimit(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, database, "A", "V", nil, "", testChecklist())
	name := "B"
	UpdateProduct(ctx, database, p.ID, model.ProductPatch{Name: &name})
	DeleteProduct(ctx, database, p.ID)

	activities, err := ListActivities(ctx, database, 2)
	if err != nil {
		t.Fatalf("ListActivities: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}
	if activities[0].Type != model.ActivityDeleted || activities[1].Type != model.ActivityEdited {
		t.Errorf("expected newest first, got %+v", activities)
	}
}

func TestSeedDemo(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := SeedDemo(ctx, database); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}

	products, _ := ListProducts(ctx, database)
	if len(products) != 4 {
		t.Fatalf("expected 4 demo products, got %d", len(products))
	}
	for _, p := range products {
		if len(p.Checklist) != 27 {
			t.Errorf("%s: expected 27 checklist items, got %d", p.Name, len(p.Checklist))
		}
	}

	// Seeding twice must not duplicate.
	if err := SeedDemo(ctx, database); err != nil {
		t.Fatalf("second SeedDemo: %v", err)
	}
	products, _ = ListProducts(ctx, database)
	if len(products) != 4 {
		t.Errorf("expected seed to be idempotent, got %d products", len(products))
	}
}

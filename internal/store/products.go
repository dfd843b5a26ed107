package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autotradeslanka/partscat/internal/model"
)

// newID returns a fresh unique product or activity id. UUIDs replace the
// timestamp-derived ids of earlier revisions, which could collide when two
// creates landed in the same millisecond.
func newID() string {
	return uuid.NewString()
}

// CreateProduct creates a new product with the given checklist, appending a
// "created" activity in the same transaction. The new product is placed at
// the head of the collection (newest-first) and has createdAt == updatedAt.
func CreateProduct(ctx context.Context, db *sql.DB, name, vehicleName string, image []byte, imageMime string, checklist []model.ChecklistItem) (*model.Product, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	id := newID()
	now := time.Now().UTC()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO products (id, name, vehicle_name, image, image_mime, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, vehicleName, image, imageMime, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	if err := insertChecklist(ctx, tx, id, checklist); err != nil {
		return nil, err
	}

	if err := appendActivity(ctx, tx, model.ActivityCreated, name, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing product: %w", err)
	}

	return GetProduct(ctx, db, id)
}

// GetProduct returns a product with its checklist, or nil if not found.
func GetProduct(ctx context.Context, db *sql.DB, id string) (*model.Product, error) {
	p := &model.Product{}
	var imageMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, vehicle_name, image_mime, created_at, updated_at
		 FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.VehicleName, &imageMime, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	p.ImageMime = imageMime.String

	checklist, err := getChecklist(ctx, db, id)
	if err != nil {
		return nil, err
	}
	p.Checklist = checklist
	return p, nil
}

// ListProducts returns all products with their checklists, newest first.
func ListProducts(ctx context.Context, db *sql.DB) ([]model.Product, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, vehicle_name, image_mime, created_at, updated_at
		 FROM products ORDER BY seq DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		var imageMime sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.VehicleName, &imageMime, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		p.ImageMime = imageMime.String
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range products {
		checklist, err := getChecklist(ctx, db, products[i].ID)
		if err != nil {
			return nil, err
		}
		products[i].Checklist = checklist
	}
	return products, nil
}

// UpdateProduct merges a sparse patch into the product and refreshes
// updatedAt, appending an "edited" activity in the same transaction. The
// activity carries the new name if the patch sets one, else the pre-update
// name. Unknown ids are a silent no-op: nothing changes, no activity.
func UpdateProduct(ctx context.Context, db *sql.DB, id string, patch model.ProductPatch) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var name, vehicleName string
	err = tx.QueryRowContext(ctx,
		`SELECT name, vehicle_name FROM products WHERE id = ?`, id,
	).Scan(&name, &vehicleName)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("getting product for update: %w", err)
	}

	if patch.Name != nil {
		name = *patch.Name
	}
	if patch.VehicleName != nil {
		vehicleName = *patch.VehicleName
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`UPDATE products SET name = ?, vehicle_name = ?, updated_at = ? WHERE id = ?`,
		name, vehicleName, now, id,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	if patch.Image != nil {
		_, err = tx.ExecContext(ctx,
			`UPDATE products SET image = ?, image_mime = ? WHERE id = ?`,
			patch.Image, patch.ImageMime, id,
		)
		if err != nil {
			return fmt.Errorf("updating product image: %w", err)
		}
	}

	if patch.Checklist != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM checklist_items WHERE product_id = ?`, id); err != nil {
			return fmt.Errorf("clearing checklist: %w", err)
		}
		if err := insertChecklist(ctx, tx, id, patch.Checklist); err != nil {
			return err
		}
	}

	if err := appendActivity(ctx, tx, model.ActivityEdited, name, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing update: %w", err)
	}
	return nil
}

// DeleteProduct removes a product, appending a "deleted" activity carrying
// the product's name at deletion time. Unknown ids are a silent no-op.
func DeleteProduct(ctx context.Context, db *sql.DB, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var name string
	err = tx.QueryRowContext(ctx, `SELECT name FROM products WHERE id = ?`, id).Scan(&name)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("getting product for delete: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM checklist_items WHERE product_id = ?`, id); err != nil {
		return fmt.Errorf("deleting checklist: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if err := appendActivity(ctx, tx, model.ActivityDeleted, name, time.Now().UTC()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}

// GetProductImage returns a product's image data and MIME type.
func GetProductImage(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM products WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting product image: %w", err)
	}
	return image, mime.String, nil
}

// insertChecklist writes a product's checklist rows. Position is 1-based
// display order, fixed for the product's lifetime.
func insertChecklist(ctx context.Context, tx *sql.Tx, productID string, checklist []model.ChecklistItem) error {
	for i, item := range checklist {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO checklist_items (product_id, position, part_name, present, is_damaged, damage_note)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			productID, i+1, item.PartName, item.Present, item.IsDamaged, item.DamageNote,
		)
		if err != nil {
			return fmt.Errorf("inserting checklist item %d: %w", i+1, err)
		}
	}
	return nil
}

// getChecklist loads a product's checklist in display order.
func getChecklist(ctx context.Context, db *sql.DB, productID string) ([]model.ChecklistItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT part_name, present, is_damaged, damage_note
		 FROM checklist_items WHERE product_id = ? ORDER BY position`, productID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting checklist: %w", err)
	}
	defer rows.Close()

	var checklist []model.ChecklistItem
	for rows.Next() {
		var item model.ChecklistItem
		if err := rows.Scan(&item.PartName, &item.Present, &item.IsDamaged, &item.DamageNote); err != nil {
			return nil, fmt.Errorf("scanning checklist item: %w", err)
		}
		checklist = append(checklist, item)
	}
	return checklist, rows.Err()
}

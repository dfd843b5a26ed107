package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/autotradeslanka/partscat/internal/model"
)

// Settings keys.
const (
	settingChecklistTemplate = "checklist_template"
	settingStatusLabels      = "status_labels"
	settingCompanyInfo       = "company_info"
)

// getSetting unmarshals a settings value into target, reporting whether the
// key exists.
func getSetting(ctx context.Context, db *sql.DB, key string, target any) (bool, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying setting %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), target); err != nil {
		return false, fmt.Errorf("decoding setting %q: %w", key, err)
	}
	return true, nil
}

// setSetting stores a settings value, overwriting any previous one.
func setSetting(ctx context.Context, db *sql.DB, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding setting %q: %w", key, err)
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("storing setting %q: %w", key, err)
	}
	return nil
}

// GetChecklistTemplate returns the ordered part-name labels used to seed
// new products' checklists, falling back to the built-in default.
func GetChecklistTemplate(ctx context.Context, db *sql.DB) ([]string, error) {
	var template []string
	found, err := getSetting(ctx, db, settingChecklistTemplate, &template)
	if err != nil {
		return nil, err
	}
	if !found {
		return model.DefaultChecklistTemplate(), nil
	}
	return template, nil
}

// SetChecklistTemplate replaces the checklist template. Existing products'
// checklists are snapshots and are not renamed.
func SetChecklistTemplate(ctx context.Context, db *sql.DB, template []string) error {
	return setSetting(ctx, db, settingChecklistTemplate, template)
}

// GetStatusLabels returns the configured status badge texts.
func GetStatusLabels(ctx context.Context, db *sql.DB) (model.StatusLabels, error) {
	var labels model.StatusLabels
	found, err := getSetting(ctx, db, settingStatusLabels, &labels)
	if err != nil {
		return model.StatusLabels{}, err
	}
	if !found {
		return model.DefaultStatusLabels(), nil
	}
	return labels, nil
}

// SetStatusLabels replaces the status badge texts.
func SetStatusLabels(ctx context.Context, db *sql.DB, labels model.StatusLabels) error {
	return setSetting(ctx, db, settingStatusLabels, labels)
}

// GetCompanyInfo returns the configured company details.
func GetCompanyInfo(ctx context.Context, db *sql.DB) (model.CompanyInfo, error) {
	var info model.CompanyInfo
	found, err := getSetting(ctx, db, settingCompanyInfo, &info)
	if err != nil {
		return model.CompanyInfo{}, err
	}
	if !found {
		return model.DefaultCompanyInfo(), nil
	}
	return info, nil
}

// SetCompanyInfo replaces the company details.
func SetCompanyInfo(ctx context.Context, db *sql.DB, info model.CompanyInfo) error {
	return setSetting(ctx, db, settingCompanyInfo, info)
}

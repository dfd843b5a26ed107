package model

import "slices"

// StatusLabels holds the display text for each derived status tag.
// One instance per running system, freely overwritten, no history.
type StatusLabels struct {
	Complete     string `json:"complete"`
	HasDamage    string `json:"has_damage"`
	MissingParts string `json:"missing_parts"`
}

// DefaultStatusLabels returns the stock badge texts.
func DefaultStatusLabels() StatusLabels {
	return StatusLabels{
		Complete:     "Complete",
		HasDamage:    "Has Damage",
		MissingParts: "Missing Parts",
	}
}

// CompanyInfo is the display configuration shown on catalog surfaces.
// Logo is a data URI, empty when unset.
type CompanyInfo struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// DefaultCompanyInfo returns the stock company details.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{Name: "Auto Trades Lanka"}
}

// defaultChecklistTemplate is the stock 27-part inspection template used to
// seed new products' checklists.
var defaultChecklistTemplate = []string{
	"Front Grille",
	"Park Light",
	"Tail Light Lens",
	"Indicator Lamp",
	"Fog Lamp",
	"Wiper Blade",
	"Side Mirror",
	"Mirror Glass",
	"Door Handle",
	"Door Moulding",
	"Mud Flap",
	"Wheel Arch Trim",
	"Bumper Bracket",
	"Number Plate Garnish",
	"Bonnet Garnish",
	"Windscreen Trim",
	"Roof Rail",
	"Mounting Bolts",
	"Clips and Fasteners",
	"Rubber Seal",
	"Wiring Harness",
	"Bulb Set",
	"Reflector",
	"Emblem",
	"Protective Film",
	"Packaging Foam",
	"Inspection Tag",
}

// DefaultChecklistTemplate returns a copy of the stock checklist template.
func DefaultChecklistTemplate() []string {
	return slices.Clone(defaultChecklistTemplate)
}

package model

// Checklist invariants: an absent part cannot be damaged, and an undamaged
// part cannot carry a damage note. The functions here enforce them at the
// moment of mutation; code that constructs items directly must do the same.

// NewChecklist seeds a checklist from template labels, one item per label,
// all present and undamaged. The labels are copied, not referenced.
func NewChecklist(template []string) []ChecklistItem {
	checklist := make([]ChecklistItem, len(template))
	for i, label := range template {
		checklist[i] = ChecklistItem{PartName: label, Present: true}
	}
	return checklist
}

// ItemPatch is a sparse change to a single checklist item, as produced by
// one control on the editing surface. Nil fields are left untouched.
type ItemPatch struct {
	Present    *bool
	IsDamaged  *bool
	DamageNote *string
}

// ApplyItemPatch merges patch into item and re-establishes the checklist
// invariants. Marking the item absent wins over any damage fields set in
// the same patch; clearing the damaged flag also clears the note.
func ApplyItemPatch(item ChecklistItem, patch ItemPatch) ChecklistItem {
	if patch.Present != nil {
		item.Present = *patch.Present
	}
	if patch.IsDamaged != nil {
		item.IsDamaged = *patch.IsDamaged
	}
	if patch.DamageNote != nil {
		item.DamageNote = *patch.DamageNote
	}

	if patch.Present != nil && !*patch.Present {
		item.IsDamaged = false
		item.DamageNote = ""
	}
	if patch.IsDamaged != nil && !*patch.IsDamaged {
		item.DamageNote = ""
	}
	return item
}

// MarkAll returns a copy of the checklist with every item's presence set.
// Marking all absent also clears the damage fields; marking all present
// leaves any prior damage fields untouched.
func MarkAll(checklist []ChecklistItem, present bool) []ChecklistItem {
	out := make([]ChecklistItem, len(checklist))
	for i, item := range checklist {
		item.Present = present
		if !present {
			item.IsDamaged = false
			item.DamageNote = ""
		}
		out[i] = item
	}
	return out
}

// ClearDamageNotes returns a copy of the checklist with the damaged flag
// and note cleared on every item, presence untouched.
func ClearDamageNotes(checklist []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, len(checklist))
	for i, item := range checklist {
		item.IsDamaged = false
		item.DamageNote = ""
		out[i] = item
	}
	return out
}

// NormalizeChecklist returns a copy of a submitted checklist with the
// invariants re-established, for callers that bypassed the editing surface.
func NormalizeChecklist(checklist []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, len(checklist))
	for i, item := range checklist {
		if !item.Present {
			item.IsDamaged = false
			item.DamageNote = ""
		}
		if !item.IsDamaged {
			item.DamageNote = ""
		}
		out[i] = item
	}
	return out
}

package heatmap

import (
	"github.com/trikaloudis/aquomixlab-heatmaps/domain/core"
	"github.com/trikaloudis/aquomixlab-heatmaps/domain/table"
)

// ResolveSelection validates a Selection against the loaded table. Pure
// validation, no side effects: an empty sample set is ErrEmptySelection
// (the pipeline simply does not run), a name missing from the table is
// ErrUnknownColumn (fatal for the run). Selections are normally offered from
// the table's own column list, but raw headers can be ambiguous, so every
// reference is checked.
func ResolveSelection(t *table.Table, sel Selection) error {
	if len(sel.SampleColumns) == 0 {
		return core.ErrEmptySelection
	}
	if !t.HasColumn(sel.IdentifierColumn) {
		return core.NewUnknownColumnError("identifier", sel.IdentifierColumn)
	}
	if !t.HasColumn(sel.LabelColumn) {
		return core.NewUnknownColumnError("label", sel.LabelColumn)
	}
	for _, name := range sel.SampleColumns {
		if !t.HasColumn(name) {
			return core.NewUnknownColumnError("sample", name)
		}
	}
	return nil
}

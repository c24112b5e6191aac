package heatmap

import (
	"strings"

	"github.com/trikaloudis/aquomixlab-heatmaps/domain/table"
)

// Common column names checked, in order, when no prior selection exists.
// Name heuristics only - defaulting by numeric position breaks on arbitrary
// input tables.
var (
	identifierNames = []string{
		"id",
		"feature_id",
		"feature",
		"compound_id",
		"metabolite_id",
		"key",
	}
	labelNames = []string{
		"name",
		"compound",
		"compound_name",
		"metabolite",
		"label",
		"annotation",
	}
)

// DefaultSelection derives a starting Selection for a freshly loaded table:
// identifier and label columns by common-name matching with first/second
// column fallbacks, and every remaining column as a sample column in table
// order.
func DefaultSelection(t *table.Table) Selection {
	identifier := matchHeader(t.Headers, identifierNames)
	if identifier == "" {
		identifier = t.Headers[0]
	}

	label := matchHeader(t.Headers, labelNames)
	if label == "" {
		if len(t.Headers) > 1 {
			label = t.Headers[1]
		} else {
			label = t.Headers[0]
		}
	}

	var samples []string
	for _, h := range t.Headers {
		if h == identifier || h == label {
			continue
		}
		samples = append(samples, h)
	}

	return Selection{
		IdentifierColumn: identifier,
		LabelColumn:      label,
		SampleColumns:    samples,
	}
}

func matchHeader(headers []string, candidates []string) string {
	for _, want := range candidates {
		for _, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				return h
			}
		}
	}
	return ""
}

package catalog

import (
	"github.com/AnkaWorks/kulturharita/boundaries"
	"github.com/AnkaWorks/kulturharita/provinces"
	"github.com/AnkaWorks/kulturharita/turkish"
)

// Row is one region of the joined table: content fields from the provinces
// dataset plus the boundary feature it matched. FeatureName is the feature's
// original property string on a match and the verbatim content name
// otherwise, so downstream lookups always have a key to try.
type Row struct {
	Name        string `json:"name"`
	FeatureName string `json:"feature_name"`
	Culture     string `json:"culture"`
	Matched     bool   `json:"matched"`
}

// BuildRows joins the content records against the boundary name index,
// one row per record, input order preserved. Matching is by normalized
// name, so diacritic and case differences between the datasets don't
// break the join.
func BuildRows(records []provinces.Province, index boundaries.NameIndex) []Row {
	rows := make([]Row, len(records))

	for idx, record := range records {
		row := Row{
			Name:    record.Name,
			Culture: record.Culture,
		}

		if original, ok := index.Get(turkish.Normalize(record.Name)); ok {
			row.FeatureName = original
			row.Matched = true
		} else {
			row.FeatureName = record.Name
		}

		rows[idx] = row
	}

	return rows
}

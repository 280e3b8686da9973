package types

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Record is a single cloud resource as returned by a listing API: a
// schema-less JSON object. Values are whatever encoding/json decodes into
// an `any` (string, float64, bool, nil, []any, map[string]any). Field sets
// vary by resource kind and API version, so there is no fixed struct.
type Record map[string]any

// ResourceSet maps a category label ("project::kind") to the records
// collected for that category during one export run.
type ResourceSet map[string][]Record

// Labels returns the set's labels in sorted order so workbook sheet order
// is deterministic.
func (s ResourceSet) Labels() []string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// RecordCount returns the total number of records across all categories.
func (s ResourceSet) RecordCount() int {
	count := 0
	for _, records := range s {
		count += len(records)
	}
	return count
}

// Merge copies every category from other into s. Labels are already
// project-prefixed, so collisions only happen if the same project is
// collected twice; last write wins.
func (s ResourceSet) Merge(other ResourceSet) {
	for label, records := range other {
		s[label] = records
	}
}

// ToRecord converts a JSON-marshalable API response object into a Record by
// round-tripping it through its JSON encoding. This keeps the downstream
// pipeline schema-less regardless of which client produced the object.
func ToRecord(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode resource: %w", err)
	}
	return rec, nil
}

// ToRecords converts a slice of API response objects into Records.
func ToRecords[T any](items []T) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		rec, err := ToRecord(item)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

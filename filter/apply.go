package filter

import (
	"fmt"
	"maps"
)

// Stats describes one Apply call.
type Stats struct {
	// Total is the number of items in the list.
	Total int
	// Kept is the number of items that matched.
	Kept int
	// Skipped counts items that were not objects or failed to evaluate.
	Skipped int
	// Err is the first evaluation error, if any.
	Err error
}

// Apply filters a list response. It accepts either a bare JSON array or the
// API envelope {"data": [...], ...}; for the envelope a shallow copy is
// returned with only data replaced. Items that are not objects, or that fail
// to evaluate, do not match and are counted in Stats.Skipped.
func Apply(f *Filter, response any) (any, Stats, error) {
	switch v := response.(type) {
	case []any:
		kept, stats := applyItems(f, v)
		return kept, stats, nil
	case map[string]any:
		data, ok := v["data"].([]any)
		if !ok {
			return nil, Stats{}, ErrNotAList
		}
		out := make(map[string]any, len(v))
		maps.Copy(out, v)
		kept, stats := applyItems(f, data)
		out["data"] = kept
		return out, stats, nil
	default:
		return nil, Stats{}, fmt.Errorf("%w: got %T", ErrNotAList, response)
	}
}

func applyItems(f *Filter, items []any) ([]any, Stats) {
	stats := Stats{Total: len(items)}
	kept := make([]any, 0, len(items))
	for _, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			stats.Skipped++
			continue
		}
		matched, err := f.Match(item)
		if err != nil {
			stats.Skipped++
			if stats.Err == nil {
				stats.Err = err
			}
			continue
		}
		if matched {
			kept = append(kept, raw)
		}
	}
	stats.Kept = len(kept)
	return kept, stats
}

func itemID(item map[string]any) string {
	if id, ok := item["id"].(string); ok {
		return id
	}
	return ""
}

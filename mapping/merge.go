package mapping

import "github.com/imdario/mergo"

// MergeEntities deep-merges src into dst and returns the result (spec
// §4.8 "Deep merge"): nested objects merge recursively, slices append,
// and a non-empty scalar already present in dst is never overwritten by
// src — mergo's own "earlier non-zero value wins" default already gives
// exactly this "first writer wins" rule, since dst here always holds the
// earlier-loaded definition's output.
func MergeEntities(dst, src Entity) (Entity, error) {
	if dst == nil {
		dst = Entity{}
	}
	if src == nil {
		return dst, nil
	}
	if err := mergo.Merge(&dst, src, mergo.WithAppendSlice); err != nil {
		return nil, err
	}
	return dst, nil
}

// MergeEntityMaps merges src's entities into dst, keyed by entity name,
// applying MergeEntities per key (spec §4.8 "Interchange pipeline" step 1
// and the entity-merge pass referenced throughout §4.8).
func MergeEntityMaps(dst, src map[string]Entity) (map[string]Entity, error) {
	if dst == nil {
		dst = make(map[string]Entity)
	}
	for key, entity := range src {
		merged, err := MergeEntities(dst[key], entity)
		if err != nil {
			return nil, err
		}
		dst[key] = merged
	}
	return dst, nil
}

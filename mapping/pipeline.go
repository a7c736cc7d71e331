package mapping

import (
	"strings"

	"github.com/bdewgo/automapper/assemble"
	"github.com/bdewgo/automapper/edifact"
	"github.com/bdewgo/automapper/mig"
)

// MapMessage runs the forward interchange pipeline for one message (spec
// §4.8 "Interchange pipeline" steps 1-2): messageDefs evaluate against
// tree's root-level groups into Nachricht.Stammdaten, and transactionDefs
// evaluate against each repetition of the group identified by
// transactionGroupID (e.g. "SG4") into one Transaktion each.
func MapMessage(messageDefs, transactionDefs []*Definition, tree *assemble.Tree, transactionGroupID string, delims edifact.Delimiters) (Nachricht, error) {
	var n Nachricht
	n.Stammdaten = make(map[string]Entity)

	if err := applyDefsInto(messageDefs, tree, delims, n.Stammdaten); err != nil {
		return Nachricht{}, err
	}

	for _, g := range tree.Groups {
		if g.ID != transactionGroupID {
			continue
		}
		for _, rep := range g.Repetitions {
			sub := &assemble.Tree{RootSegments: rep.Segments, Groups: rep.Groups}
			tx := Transaktion{
				Stammdaten:        make(map[string]Entity),
				Transaktionsdaten: make(map[string]Entity),
			}
			for _, def := range transactionDefs {
				target := tx.Stammdaten
				if isTransactionDataEntity(def.Entity) {
					target = tx.Transaktionsdaten
				}
				if err := applyDefsInto([]*Definition{def}, sub, delims, target); err != nil {
					return Nachricht{}, err
				}
			}
			n.Transaktionen = append(n.Transaktionen, tx)
		}
	}

	return n, nil
}

func applyDefsInto(defs []*Definition, tree *assemble.Tree, delims edifact.Delimiters, into map[string]Entity) error {
	for _, def := range defs {
		for _, inst := range ResolveGroupInstances(tree, def.SourceGroup) {
			entity, ok := ApplyForward(def, inst, delims)
			if !ok {
				continue
			}
			merged, err := MergeEntities(into[def.entityKey()], entity)
			if err != nil {
				return err
			}
			into[def.entityKey()] = merged
		}
	}
	return nil
}

// isTransactionDataEntity reports whether entity belongs in a
// Transaktion's transaktionsdaten (the prozessdaten/nachricht entities)
// rather than its stammdaten (spec §4.8 step 2).
func isTransactionDataEntity(entity string) bool {
	switch strings.ToLower(entity) {
	case "prozessdaten", "nachricht":
		return true
	default:
		return false
	}
}

// EnrichCodes replaces each flagged field's string value in entity with a
// {code, meaning} object looked up in codes (spec §4.8 step 3). Fields not
// present in codes, or not named in fieldNames, are left untouched.
func EnrichCodes(entity Entity, fieldNames []string, codes map[string]string) Entity {
	out := make(Entity, len(entity))
	for k, v := range entity {
		out[k] = v
	}
	for _, name := range fieldNames {
		raw, ok := out[name].(string)
		if !ok {
			continue
		}
		meaning, known := codes[raw]
		if !known {
			continue
		}
		out[name] = Entity{"code": raw, "meaning": meaning}
	}
	return out
}

// ReverseMessage is the inverse of MapMessage: it reconstructs an
// assemble.Tree from a Nachricht's mapped entities, against schema for
// segment- and group-ordering hints (spec §4.8 "Path application —
// reverse", final paragraph). Definitions operating on disjoint segment
// tags reconstruct cleanly; definitions sharing a tag across message and
// companion fields are merged by first-writer-wins at the tag level, a
// deliberate simplification over full per-component merging (see
// DESIGN.md).
func ReverseMessage(messageDefs, transactionDefs []*Definition, n Nachricht, schema *mig.Schema, transactionGroupID string) *assemble.Tree {
	tree := &assemble.Tree{}

	rootDefs, groupDefs := partitionBySourceGroup(messageDefs)

	for _, def := range rootDefs {
		entity, ok := n.Stammdaten[def.entityKey()]
		if !ok {
			continue
		}
		tree.RootSegments = mergeSegmentsByTag(tree.RootSegments, ApplyReverse(def, entity, rootOrder(schema)))
	}
	tree.PostGroupStart = len(tree.RootSegments)

	byGroupID := make(map[string][]*Definition)
	var groupOrderIDs []string
	for _, def := range groupDefs {
		if _, seen := byGroupID[def.SourceGroup]; !seen {
			groupOrderIDs = append(groupOrderIDs, def.SourceGroup)
		}
		byGroupID[def.SourceGroup] = append(byGroupID[def.SourceGroup], def)
	}
	for _, groupID := range groupOrderIDs {
		decl, _ := findGroupDecl(schema, groupID)
		var segs []edifact.Segment
		for _, def := range byGroupID[groupID] {
			entity, ok := n.Stammdaten[def.entityKey()]
			if !ok {
				continue
			}
			segs = mergeSegmentsByTag(segs, ApplyReverse(def, entity, groupOrder(decl)))
		}
		if len(segs) > 0 {
			tree.Groups = append(tree.Groups, assemble.Group{ID: groupID, Repetitions: []assemble.Repetition{{Segments: segs}}})
		}
	}

	txDecl, _ := findGroupDecl(schema, transactionGroupID)
	var txReps []assemble.Repetition
	for _, tx := range n.Transaktionen {
		var segs []edifact.Segment
		var nested []assemble.Group
		for _, def := range transactionDefs {
			entity, ok := tx.Stammdaten[def.entityKey()]
			if !ok {
				entity, ok = tx.Transaktionsdaten[def.entityKey()]
			}
			if !ok {
				continue
			}
			if def.SourceGroup == "" {
				segs = mergeSegmentsByTag(segs, ApplyReverse(def, entity, groupOrder(txDecl)))
				continue
			}
			subDecl, _ := findGroupDeclIn(txDecl, def.SourceGroup)
			sub := ApplyReverse(def, entity, groupOrder(subDecl))
			gi := 0
			for gi < len(nested) && nested[gi].ID != def.SourceGroup {
				gi++
			}
			if gi == len(nested) {
				nested = append(nested, assemble.Group{ID: def.SourceGroup, Repetitions: []assemble.Repetition{{}}})
			}
			nested[gi].Repetitions[0].Segments = mergeSegmentsByTag(nested[gi].Repetitions[0].Segments, sub)
		}
		txReps = append(txReps, assemble.Repetition{Segments: segs, Groups: nested})
	}
	if len(txReps) > 0 {
		tree.Groups = append(tree.Groups, assemble.Group{ID: transactionGroupID, Repetitions: txReps})
	}

	return tree
}

func partitionBySourceGroup(defs []*Definition) (root, grouped []*Definition) {
	for _, def := range defs {
		if def.SourceGroup == "" {
			root = append(root, def)
		} else {
			grouped = append(grouped, def)
		}
	}
	return root, grouped
}

// mergeSegmentsByTag appends each of incoming's segments to existing
// unless existing already carries that tag, in which case the existing
// (first-written) segment wins whole.
func mergeSegmentsByTag(existing, incoming []edifact.Segment) []edifact.Segment {
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s.Tag] = true
	}
	for _, s := range incoming {
		if !seen[s.Tag] {
			existing = append(existing, s)
			seen[s.Tag] = true
		}
	}
	return existing
}

func rootOrder(schema *mig.Schema) []string {
	if schema == nil {
		return nil
	}
	order := make([]string, len(schema.RootSegments))
	for i, s := range schema.RootSegments {
		order[i] = s.Tag
	}
	return order
}

func groupOrder(decl mig.GroupDecl) []string {
	order := make([]string, len(decl.Segments))
	for i, s := range decl.Segments {
		order[i] = s.Tag
	}
	return order
}

func findGroupDecl(schema *mig.Schema, id string) (mig.GroupDecl, bool) {
	if schema == nil {
		return mig.GroupDecl{}, false
	}
	for _, g := range schema.Groups {
		if found, ok := findGroupDeclIn(g, id); ok {
			return found, true
		}
	}
	return mig.GroupDecl{}, false
}

func findGroupDeclIn(g mig.GroupDecl, id string) (mig.GroupDecl, bool) {
	if g.ID == id {
		return g, true
	}
	for _, sub := range g.Groups {
		if found, ok := findGroupDeclIn(sub, id); ok {
			return found, true
		}
	}
	return mig.GroupDecl{}, false
}

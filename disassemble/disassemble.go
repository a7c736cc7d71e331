package disassemble

import (
	"github.com/bdewgo/automapper/assemble"
	"github.com/bdewgo/automapper/edifact"
	"github.com/bdewgo/automapper/mig"
)

// Disassemble flattens tree back into a canonical segment sequence,
// ordering groups by schema's declaration order (spec §4.9).
func Disassemble(tree *assemble.Tree, schema *mig.Schema) []edifact.Segment {
	var out []edifact.Segment
	out = append(out, tree.RootSegments[:tree.PostGroupStart]...)
	out = append(out, flattenGroups(tree.Groups, schema.Groups)...)
	out = append(out, tree.RootSegments[tree.PostGroupStart:]...)
	return out
}

// flattenGroups emits each of declGroups' matching tree groups in
// declaration order, skipping declarations the tree has no instance of.
func flattenGroups(treeGroups []assemble.Group, declGroups []mig.GroupDecl) []edifact.Segment {
	byID := make(map[string]assemble.Group, len(treeGroups))
	for _, g := range treeGroups {
		byID[g.ID] = g
	}

	var out []edifact.Segment
	for _, decl := range declGroups {
		g, ok := byID[decl.ID]
		if !ok {
			continue
		}
		out = append(out, flattenGroup(g, decl)...)
	}
	return out
}

// flattenGroup emits every repetition of g, in input order, each
// repetition's own segments followed by its nested groups recursively.
func flattenGroup(g assemble.Group, decl mig.GroupDecl) []edifact.Segment {
	var out []edifact.Segment
	for _, rep := range g.Repetitions {
		out = append(out, rep.Segments...)
		out = append(out, flattenGroups(rep.Groups, decl.Groups)...)
	}
	return out
}

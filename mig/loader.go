package mig

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bdewgo/automapper/internal/xmltree"
)

// Sentinel attribute names harvested from the XML (spec §4.3).
const (
	attrName                = "Name"
	attrDescription         = "Description"
	attrStatusStd           = "Status_Std"
	attrStatusSpecification = "Status_Specification"
	attrMaxRepStd           = "MaxRep_Std"
	attrMaxRepSpecification = "MaxRep_Specification"
	attrNumber              = "Number"
	attrVersionsnummer      = "Versionsnummer"
	attrValue               = "Value"
)

// MissingAttributeError is raised when the MIG root is missing the
// Versionsnummer attribute (spec §4.3, §7).
type MissingAttributeError struct {
	Element   string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("mig: element %s missing required attribute %s", e.Element, e.Attribute)
}

// Load decodes a MIG XML document from r into a Schema.
func Load(r io.Reader) (*Schema, error) {
	root, err := xmltree.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("mig: decoding XML: %w", err)
	}
	if root == nil {
		return nil, fmt.Errorf("mig: empty document")
	}
	if !strings.HasPrefix(root.Name, "M_") {
		logrus.WithField("root", root.Name).Warn("mig: root element lacks M_ sigil, proceeding anyway")
	}

	version, ok := root.Attr(attrVersionsnummer)
	if !ok || version == "" {
		return nil, &MissingAttributeError{Element: root.Name, Attribute: attrVersionsnummer}
	}

	schema := &Schema{
		FormatVersion: version,
		MessageType:   strings.TrimPrefix(root.Name, "M_"),
	}

	for _, child := range root.Children {
		switch {
		case strings.HasPrefix(child.Name, "G_"):
			schema.Groups = append(schema.Groups, parseGroup(child))
		case strings.HasPrefix(child.Name, "S_"):
			schema.RootSegments = append(schema.RootSegments, parseSegment(child))
		}
	}

	logrus.WithFields(logrus.Fields{
		"format_version": schema.FormatVersion,
		"message_type":   schema.MessageType,
		"root_segments":  len(schema.RootSegments),
		"groups":         len(schema.Groups),
	}).Debug("mig: schema loaded")

	return schema, nil
}

func parseGroup(n *xmltree.Node) GroupDecl {
	g := GroupDecl{
		ID:                  strings.TrimPrefix(n.Name, "G_"),
		StatusStd:           statusAttr(n, attrStatusStd),
		StatusSpecification: statusAttr(n, attrStatusSpecification),
		MaxRepStd:           intAttr(n, attrMaxRepStd),
		MaxRepSpecification: intAttr(n, attrMaxRepSpecification),
	}
	for _, child := range n.Children {
		switch {
		case strings.HasPrefix(child.Name, "S_"):
			g.Segments = append(g.Segments, parseSegment(child))
		case strings.HasPrefix(child.Name, "G_"):
			g.Groups = append(g.Groups, parseGroup(child))
		}
	}
	return g
}

func parseSegment(n *xmltree.Node) SegmentDecl {
	s := SegmentDecl{
		Tag:                 strings.ToUpper(strings.TrimPrefix(n.Name, "S_")),
		Description:         stringAttr(n, attrDescription),
		StatusStd:           statusAttr(n, attrStatusStd),
		StatusSpecification: statusAttr(n, attrStatusSpecification),
		MaxRepStd:           intAttr(n, attrMaxRepStd),
		MaxRepSpecification: intAttr(n, attrMaxRepSpecification),
		Number:              stringAttr(n, attrNumber),
	}
	for _, child := range n.Children {
		if strings.HasPrefix(child.Name, "C_") || strings.HasPrefix(child.Name, "D_") {
			s.Elements = append(s.Elements, parseElement(child))
		}
	}
	return s
}

func parseElement(n *xmltree.Node) ElementDecl {
	composite := strings.HasPrefix(n.Name, "C_")
	prefix := "D_"
	if composite {
		prefix = "C_"
	}
	e := ElementDecl{
		ID:          strings.TrimPrefix(n.Name, prefix),
		Description: stringAttr(n, attrDescription),
		Composite:   composite,
	}
	for _, child := range n.Children {
		switch {
		case strings.HasPrefix(child.Name, "D_"):
			e.Components = append(e.Components, parseElement(child))
		case child.Name == "Code":
			if e.Codes == nil {
				e.Codes = make(map[string]string)
			}
			value := stringAttr(child, attrValue)
			e.Codes[value] = stringAttr(child, attrDescription)
		}
	}
	return e
}

func stringAttr(n *xmltree.Node, name string) string {
	v, _ := n.Attr(name)
	return v
}

func statusAttr(n *xmltree.Node, name string) Status {
	v, _ := n.Attr(name)
	switch strings.ToUpper(v) {
	case "M", "MUSS":
		return StatusMandatory
	case "C", "K", "KANN":
		return StatusConditional
	case "O":
		return StatusOptional
	case "N", "X":
		return StatusNotUsed
	default:
		return StatusUnknown
	}
}

func intAttr(n *xmltree.Node, name string) int {
	v, ok := n.Attr(name)
	if !ok || v == "" {
		return 0
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return i
}

package ahb

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bdewgo/automapper/internal/xmltree"
)

const (
	attrPID         = "Pruefidentifikator"
	attrDescription = "Beschreibung"
	attrDirection   = "Kommunikationsrichtung"
	attrNumber      = "Number"
	attrStatus      = "Status"
	attrVersion     = "Versionsnummer"
)

// Load decodes an AHB XML document from r into a Schema. Every direct or
// indirect S_* descendant of an <AWF> element contributes its Number
// attribute to that workflow's segment-number set (spec §4.4); status
// expressions are kept per number but never evaluated by this package.
func Load(r io.Reader) (*Schema, error) {
	root, err := xmltree.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("ahb: decoding XML: %w", err)
	}
	if root == nil {
		return nil, fmt.Errorf("ahb: empty document")
	}
	if !strings.HasPrefix(root.Name, "AHB_") {
		logrus.WithField("root", root.Name).Warn("ahb: root element lacks AHB_ sigil, proceeding anyway")
	}

	schema := &Schema{
		FormatVersion: stringAttr(root, attrVersion),
		MessageType:   strings.TrimPrefix(root.Name, "AHB_"),
		Workflows:     make(map[string]Workflow),
	}

	xmltree.Walk(root, func(n *xmltree.Node) {
		if n.Name != "AWF" {
			return
		}
		wf := parseWorkflow(n)
		if wf.PID == "" {
			logrus.WithField("awf", wf.Description).Warn("ahb: AWF element missing Pruefidentifikator, skipping")
			return
		}
		schema.Workflows[wf.PID] = wf
	})

	logrus.WithFields(logrus.Fields{
		"format_version": schema.FormatVersion,
		"message_type":   schema.MessageType,
		"workflows":      len(schema.Workflows),
	}).Debug("ahb: schema loaded")

	return schema, nil
}

func parseWorkflow(n *xmltree.Node) Workflow {
	wf := Workflow{
		PID:               stringAttr(n, attrPID),
		Description:       stringAttr(n, attrDescription),
		Direction:         parseDirection(stringAttr(n, attrDirection)),
		SegmentNumbers:    make(map[string]struct{}),
		StatusExpressions: make(map[string]string),
	}

	xmltree.Walk(n, func(child *xmltree.Node) {
		if !strings.HasPrefix(child.Name, "S_") {
			return
		}
		number, ok := child.Attr(attrNumber)
		if !ok || number == "" {
			return
		}
		wf.SegmentNumbers[number] = struct{}{}
		if status, ok := child.Attr(attrStatus); ok {
			wf.StatusExpressions[number] = status
		}
	})

	return wf
}

func parseDirection(v string) Direction {
	switch strings.ToLower(v) {
	case "outbound", "ausgehend":
		return DirectionOutbound
	case "inbound", "eingehend":
		return DirectionInbound
	default:
		return DirectionUnknown
	}
}

func stringAttr(n *xmltree.Node, name string) string {
	v, _ := n.Attr(name)
	return v
}

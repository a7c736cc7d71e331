package mapping

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// rawDefinitionFile mirrors one mapping TOML file's top-level shape
// (spec §4.6 "Table format"/§6): [meta], [fields], optional
// [companion_fields]. Field values decode as either a bare string (the
// target name) or a table carrying target/default/enum_map.
type rawDefinitionFile struct {
	Meta struct {
		Entity        string `toml:"entity"`
		BO4EType      string `toml:"bo4e_type"`
		SourceGroup   string `toml:"source_group"`
		Discriminator string `toml:"discriminator"`
		CompanionType string `toml:"companion_type"`
	} `toml:"meta"`
	Fields          map[string]interface{} `toml:"fields"`
	CompanionFields map[string]interface{} `toml:"companion_fields"`
}

type rawFieldSpec struct {
	target  string
	deflt   string
	enumMap map[string]string
}

func asFieldSpec(v interface{}) (rawFieldSpec, bool) {
	switch t := v.(type) {
	case string:
		return rawFieldSpec{target: t}, true
	case map[string]interface{}:
		spec := rawFieldSpec{}
		if s, ok := t["target"].(string); ok {
			spec.target = s
		}
		if s, ok := t["default"].(string); ok {
			spec.deflt = s
		}
		if m, ok := t["enum_map"].(map[string]interface{}); ok {
			spec.enumMap = make(map[string]string, len(m))
			for k, val := range m {
				if s, ok := val.(string); ok {
					spec.enumMap[k] = s
				}
			}
		}
		return spec, true
	default:
		return rawFieldSpec{}, false
	}
}

// LoadDefinition parses one mapping TOML file's bytes and resolves its
// field paths against idx. name is carried only for diagnostics.
func LoadDefinition(data []byte, name string, idx *SchemaIndex) (*Definition, error) {
	var raw rawDefinitionFile
	_, err := toml.Decode(string(data), &raw)
	if err != nil {
		offset := 0
		if de, ok := err.(toml.ParseError); ok {
			offset = de.Position.Start
		}
		return nil, &DefinitionError{Path: name, Offset: offset, Cause: err}
	}

	def := &Definition{
		Entity:        raw.Meta.Entity,
		BO4EType:      raw.Meta.BO4EType,
		SourceGroup:   raw.Meta.SourceGroup,
		CompanionType: raw.Meta.CompanionType,
	}

	if raw.Meta.Discriminator != "" {
		disc, err := ParseDiscriminator(idx, raw.Meta.Discriminator)
		if err != nil {
			return nil, &DefinitionError{Path: name, Cause: err}
		}
		def.Discriminator = &disc
	}

	def.Fields, err = resolveFieldSection(idx, raw.Fields, name)
	if err != nil {
		return nil, err
	}
	def.CompanionFields, err = resolveFieldSection(idx, raw.CompanionFields, name)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file":         name,
		"entity":       def.Entity,
		"source_group": def.SourceGroup,
		"fields":       len(def.Fields),
	}).Debug("mapping: definition loaded")

	return def, nil
}

func resolveFieldSection(idx *SchemaIndex, raw map[string]interface{}, name string) ([]FieldMapping, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic regardless of TOML decode's map order

	var out []FieldMapping
	for _, pathStr := range keys {
		spec, ok := asFieldSpec(raw[pathStr])
		if !ok {
			return nil, &DefinitionError{Path: name, Cause: fmt.Errorf("field %q: unsupported value shape", pathStr)}
		}
		p, err := Resolve(idx, pathStr)
		if err != nil {
			return nil, &DefinitionError{Path: name, Cause: err}
		}
		out = append(out, FieldMapping{
			Path:    p,
			Target:  spec.target,
			Default: spec.deflt,
			EnumMap: spec.enumMap,
		})
	}
	return out, nil
}

// Bundle is a loaded PID mapping bundle: the message-level definitions
// (shared across every PID of a message variant) and the per-PID
// transaction-level definitions (spec §4.6, §6 directory layout).
type Bundle struct {
	Message []*Definition
	PerPID  map[string][]*Definition
}

// LoadBundle walks dir (an fs.FS rooted at mappings/<FV>/<MSG_VARIANT>/)
// loading every *.toml file under message/ into Bundle.Message and every
// *.toml file under pid_<PID>/ into Bundle.PerPID[PID].
func LoadBundle(bundleFS fs.FS, idx *SchemaIndex) (*Bundle, error) {
	b := &Bundle{PerPID: make(map[string][]*Definition)}

	err := fs.WalkDir(bundleFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".toml" {
			return nil
		}
		data, err := fs.ReadFile(bundleFS, p)
		if err != nil {
			return &DefinitionError{Path: p, Cause: err}
		}
		def, err := LoadDefinition(data, p, idx)
		if err != nil {
			return err
		}

		// fs.WalkDir paths are always "/"-separated regardless of host OS
		// (io/fs doc), so splitting must use path, not path/filepath.
		dir := path.Dir(p)
		switch {
		case dir == "message" || strings.HasPrefix(dir, "message/"):
			b.Message = append(b.Message, def)
		case strings.HasPrefix(dir, "pid_"):
			pid := strings.TrimPrefix(strings.SplitN(dir, "/", 2)[0], "pid_")
			b.PerPID[pid] = append(b.PerPID[pid], def)
		default:
			logrus.WithField("file", p).Warn("mapping: definition file outside message/ or pid_*/, ignoring")
		}
		return nil
	})
	if err != nil {
		var de *DefinitionError
		if ok := asDefinitionError(err, &de); ok {
			return nil, de
		}
		return nil, err
	}

	return b, nil
}

func asDefinitionError(err error, target **DefinitionError) bool {
	de, ok := err.(*DefinitionError)
	if !ok {
		return false
	}
	*target = de
	return true
}

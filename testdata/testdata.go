// Package testdata provides embedded fixtures for testing the automapper
// module: a sample UTILMD EDIFACT message, a MIG XML schema, an AHB XML
// workflow document, a PID mapping TOML bundle, and a PID Schema JSON
// document — one small, internally-consistent scenario (PID 55003,
// "Anmeldung Marktlokation") exercised end to end.
package testdata

import (
	"embed"
	"fmt"
)

//go:embed edifact/*.edi mig/*.xml ahb/*.xml mapping/message/*.toml mapping/pid_55003/*.toml pidschema/*.json
var FS embed.FS

// File paths within FS.
const (
	FileUTILMDAnmeldung   = "edifact/utilmd_anmeldung.edi"
	FileMIGUtilmdFV2504   = "mig/mig_utilmd_fv2504.xml"
	FileAHBUtilmd55003    = "ahb/ahb_utilmd_55003.xml"
	FileMappingMarktteiln = "mapping/message/marktteilnehmer.toml"
	FileMappingMarktlok   = "mapping/pid_55003/marktlokation.toml"
	FilePIDSchema55003    = "pidschema/pid_schema_55003.json"
)

// LoadUTILMDAnmeldung loads the sample UTILMD "Anmeldung Marktlokation"
// EDIFACT message (PID 55003).
func LoadUTILMDAnmeldung() ([]byte, error) {
	return LoadFile(FileUTILMDAnmeldung)
}

// LoadMIGUtilmdFV2504 loads the MIG XML schema the sample message
// validates against.
func LoadMIGUtilmdFV2504() ([]byte, error) {
	return LoadFile(FileMIGUtilmdFV2504)
}

// LoadAHBUtilmd55003 loads the AHB XML workflow document for PID 55003.
func LoadAHBUtilmd55003() ([]byte, error) {
	return LoadFile(FileAHBUtilmd55003)
}

// LoadMappingMarktteilnehmer loads the message-level Marktteilnehmer
// mapping definition TOML.
func LoadMappingMarktteilnehmer() ([]byte, error) {
	return LoadFile(FileMappingMarktteiln)
}

// LoadMappingMarktlokation loads the PID-55003-scoped Marktlokation
// mapping definition TOML.
func LoadMappingMarktlokation() ([]byte, error) {
	return LoadFile(FileMappingMarktlok)
}

// LoadPIDSchema55003 loads the PID Schema JSON document for PID 55003.
func LoadPIDSchema55003() ([]byte, error) {
	return LoadFile(FilePIDSchema55003)
}

// LoadFile loads any embedded fixture by its path within FS.
func LoadFile(name string) ([]byte, error) {
	data, err := FS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("testdata: loading %s: %w", name, err)
	}
	return data, nil
}

// MustLoad loads an embedded fixture and panics on error. Useful for test
// setup where a missing fixture should halt the test immediately.
func MustLoad(name string) []byte {
	data, err := LoadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// Package entities defines core domain models and data structures.
package entities

// ArtifactSpec describes one package the external build engine produces
type ArtifactSpec struct {
	Variant     BuildVariant
	Abi         string // empty for universal or unsplit packages
	Universal   bool
	FileName    string
	VersionCode int
	Signed      bool
}

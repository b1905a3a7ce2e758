package entities

import "time"

// SBOM is a CycloneDX bill of materials for the app's declared dependencies
type SBOM struct {
	BOMFormat   string      `json:"bomFormat"`   // "CycloneDX"
	SpecVersion string      `json:"specVersion"` // "1.4"
	Version     int         `json:"version"`
	Metadata    Metadata    `json:"metadata"`
	Components  []Component `json:"components"`
}

// Component is one entry of the SBOM
type Component struct {
	Type    string `json:"type"` // "application" or "library"
	Group   string `json:"group,omitempty"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	PURL    string `json:"purl,omitempty"`
	Scope   string `json:"scope,omitempty"`
}

// Metadata describes the SBOM and the application it belongs to
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Tools     []Tool    `json:"tools"`
	Component Component `json:"component"`
}

// Tool identifies the generator
type Tool struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

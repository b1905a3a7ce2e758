package entities

import "time"

// PlanAttestation records the checksum and optional signature written next
// to a serialized build plan
type PlanAttestation struct {
	PlanPath      string
	SHA256        string
	SBOMPath      string
	SignaturePath string // empty when the plan was not signed
	SignerKeyID   string
	Timestamp     time.Time
}

package gateways

import (
	"context"
	"fmt"
	"os"

	"github.com/ochairo/droidspec/internal/domain/entities"
	"github.com/ochairo/droidspec/internal/external-adapters/gpg"
)

// planAttestor wraps the external GPG adapter to sign and verify written plans
type planAttestor struct {
	checksums *checksumVerifier
}

// NewPlanAttestor creates a new plan attestor
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewPlanAttestor() *planAttestor {
	return &planAttestor{checksums: NewChecksumVerifier()}
}

// Sign adds a detached signature to an attested plan using the private key
// at keyPath
func (a *planAttestor) Sign(_ context.Context, att *entities.PlanAttestation, keyPath string, passphrase []byte) error {
	signer, err := gpg.NewSignerFromFile(keyPath, passphrase)
	if err != nil {
		return fmt.Errorf("failed to load signing key: %w", err)
	}

	sigPath, err := signer.SignFile(att.PlanPath)
	if err != nil {
		return err
	}

	att.SignaturePath = sigPath
	att.SignerKeyID = signer.KeyID()
	return nil
}

// Verify checks the plan's checksum file and, when keyPath is set, its
// detached signature
func (a *planAttestor) Verify(ctx context.Context, planPath, keyPath string) (*entities.PlanAttestation, error) {
	if err := a.checksums.VerifyChecksumFile(ctx, planPath); err != nil {
		return nil, err
	}

	sum, err := a.checksums.CalculateChecksum(planPath)
	if err != nil {
		return nil, err
	}
	att := &entities.PlanAttestation{PlanPath: planPath, SHA256: sum}

	if keyPath == "" {
		return att, nil
	}

	sigPath := planPath + gpg.SignatureSuffix
	if _, err := os.Stat(sigPath); err != nil {
		return nil, fmt.Errorf("plan is not signed: %w", err)
	}

	v := gpg.NewVerifier()
	if err := v.ImportKeyFromFile(keyPath); err != nil {
		return nil, fmt.Errorf("failed to import verification key: %w", err)
	}

	keyID, err := v.VerifySignatureFromFile(planPath, sigPath)
	if err != nil {
		return nil, err
	}

	att.SignaturePath = sigPath
	att.SignerKeyID = keyID
	return att, nil
}

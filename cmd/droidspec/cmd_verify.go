package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ochairo/droidspec/internal/domain-adapters/gateways"
)

// VerifyCmd is 'droidspec verify'
type VerifyCmd struct {
	Plan string `arg:"" type:"existingfile" help:"Written plan file (build-plan.json)."`
	Key  string `short:"k" type:"path" help:"Armored public key; when set the detached signature must verify." placeholder:"KEY"`
}

// Run checks the plan against its .sha256 file and, with a key, its .asc signature
func (c *VerifyCmd) Run(ctx context.Context, s *Settings, out io.Writer) error {
	key := firstNonEmpty(c.Key, s.Config.VerifyKey)

	att, err := gateways.NewPlanAttestor().Verify(ctx, c.Plan, key)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	fmt.Fprintf(out, "✓ Checksum verified: %s\n", att.SHA256)
	if att.SignerKeyID != "" {
		fmt.Fprintf(out, "✓ Signature verified: key %s\n", att.SignerKeyID)
	}
	return nil
}

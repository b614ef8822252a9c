package render

import (
	"fmt"
	"io"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// VerifyRenderer renders explorer verification outcomes
type VerifyRenderer struct {
	out io.Writer
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out io.Writer) *VerifyRenderer {
	return &VerifyRenderer{out: out}
}

// RenderVerifyResult prints one line per deployment and a summary
func (r *VerifyRenderer) RenderVerifyResult(result *usecase.VerifyDeploymentResult) error {
	if len(result.Outcomes) == 0 {
		fmt.Fprintf(r.out, "No deployments recorded on %s\n", result.Network.Name)
		return nil
	}

	verified, skipped := 0, 0
	for _, o := range result.Outcomes {
		d := o.Deployment
		name := deploymentName(d)

		switch {
		case o.Skipped != "":
			skipped++
			fmt.Fprintf(r.out, "⏭️  %s %s %s\n", name, addressStyle.Sprint(d.Address.Hex()), labelStyle.Sprintf("(%s)", o.Skipped))
		case o.Err != nil:
			fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%s %s: %v", name, d.Address.Hex(), o.Err)))
		default:
			verified++
			fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s %s verified", name, d.Address.Hex())))
		}

		if o.Err == nil && d.Verification != nil && d.Verification.URL != "" {
			fmt.Fprintf(r.out, "   %s\n", linkStyle.Sprint(d.Verification.URL))
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%d verified, %d skipped, %d failed on %s\n", verified, skipped, result.Failed(), result.Network.Name)
	return nil
}

// deploymentName shows the compiled contract when it differs from the logical one
func deploymentName(d *domain.Deployment) string {
	if d.ArtifactName() != d.Contract {
		return fmt.Sprintf("%s (%s)", d.Contract, d.ArtifactName())
	}
	return d.Contract
}

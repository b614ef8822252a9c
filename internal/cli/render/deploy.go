package render

import (
	"fmt"
	"io"

	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// DeployRenderer prints deployed addresses. The "<Name> deployed to:" lines are
// stable so scripts can grep them.
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// RenderShareDeposit prints the ShareDeposit deployment
func (r *DeployRenderer) RenderShareDeposit(result *usecase.DeployShareDepositResult) error {
	d := result.Deployment
	fmt.Fprintf(r.out, "%s deployed to: %s\n", d.Contract, d.Address.Hex())
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("owner:   "), d.Owner.Hex())
	writeReceipt(r.out, result.Receipt)
	return nil
}

// RenderKleek prints the proxy and implementation deployments
func (r *DeployRenderer) RenderKleek(result *usecase.DeployKleekResult) error {
	fmt.Fprintf(r.out, "%s deployed to: %s\n", result.Proxy.Contract, result.Proxy.Address.Hex())
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("impl:    "), result.Implementation.Address.Hex())
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("owner:   "), result.Proxy.Owner.Hex())
	for _, receipt := range result.Receipts {
		writeReceipt(r.out, receipt)
	}
	return nil
}

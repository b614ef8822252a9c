package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

var kindLabels = map[domain.DeploymentKind]string{
	domain.ProxyDeployment:          "proxy",
	domain.ImplementationDeployment: "implementation",
	domain.SingletonDeployment:      "singleton",
}

// DeploymentsRenderer renders recorded deployments grouped by chain
type DeploymentsRenderer struct {
	out io.Writer
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out}
}

// RenderDeploymentList renders one table per chain
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.DeploymentListResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	byChain := lo.GroupBy(result.Deployments, func(d *domain.Deployment) uint64 { return d.ChainID })
	chainIDs := lo.Uniq(lo.Map(result.Deployments, func(d *domain.Deployment, _ int) uint64 { return d.ChainID }))

	for _, chainID := range chainIDs {
		deployments := byChain[chainID]
		fmt.Fprintln(r.out, chainHeader.Sprintf(" ⛓ chain %d (%s) ", chainID, deployments[0].Network))

		t := newTable(r.out)
		header := table.Row{"Contract", "Kind", "Address", "Implementation", "Block", "Verified", "Created"}
		if result.OnChain != nil {
			header = append(header, "On chain")
		}
		t.AppendHeader(header)
		for _, d := range deployments {
			impl := ""
			if d.Implementation != nil {
				impl = shortAddress(d.Implementation.Hex())
			}
			row := table.Row{
				d.Contract,
				statusLabel(kindLabels[d.Kind]),
				addressStyle.Sprint(d.Address.Hex()),
				impl,
				d.BlockNumber,
				verificationLabel(d.Verification),
				labelStyle.Sprint(d.CreatedAt.Local().Format("2006-01-02 15:04:05")),
			}
			if result.OnChain != nil {
				row = append(row, onChainLabel(result.OnChain, d.ID))
			}
			t.AppendRow(row)
		}
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 5, Align: text.AlignRight}})
		t.Render()
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "%d deployment(s)\n", result.Summary.Total)
	return nil
}

func onChainLabel(onChain map[string]bool, id string) string {
	exists, checked := onChain[id]
	switch {
	case !checked:
		return "-"
	case exists:
		return successStyle.Sprint("✓")
	default:
		return failureStyle.Sprint("✗ no code")
	}
}

func verificationLabel(v *domain.Verification) string {
	switch {
	case v == nil:
		return "-"
	case v.Status == domain.VerificationVerified:
		return successStyle.Sprint("✓ " + v.Tool)
	default:
		return failureStyle.Sprint("✗ " + v.Tool)
	}
}

// newTable creates a borderless table writer, the style shared by every listing
func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	return t
}

// statusLabel title-cases a status or kind label
func statusLabel(s string) string {
	return cases.Title(language.English).String(s)
}

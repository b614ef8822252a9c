package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders the configured networks as a table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"", "Network", "Chain ID", "Explorer", "Status"})
	for _, network := range result.Networks {
		marker := ""
		if network.Current {
			marker = successStyle.Sprint("*")
		}
		if network.Error != nil {
			t.AppendRow(table.Row{marker, network.Name, "-", "-", failureStyle.Sprint(network.Error.Error())})
			continue
		}
		explorer := network.ExplorerURL
		if explorer == "" {
			explorer = "-"
		}
		status := statusLabel("ready")
		if network.Checked {
			status = fmt.Sprintf("%s (block %d)", statusLabel("reachable"), network.HeadBlock)
		}
		t.AppendRow(table.Row{marker, network.Name, network.ChainID, explorer, successStyle.Sprint(status)})
	}
	t.Render()
	return nil
}

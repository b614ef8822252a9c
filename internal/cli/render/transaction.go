package render

import (
	"fmt"
	"io"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
)

// writeReceipt prints the confirmation summary shared by every state-changing command
func writeReceipt(out io.Writer, receipt *domain.Receipt) {
	if receipt == nil {
		return
	}
	fmt.Fprintf(out, "  %s %s\n", labelStyle.Sprint("tx:      "), hashStyle.Sprint(receipt.TxHash.Hex()))
	fmt.Fprintf(out, "  %s %d\n", labelStyle.Sprint("block:   "), receipt.BlockNumber)
	fmt.Fprintf(out, "  %s %d\n", labelStyle.Sprint("gas used:"), receipt.GasUsed)
	if receipt.ExplorerURL != "" {
		fmt.Fprintf(out, "  %s %s\n", labelStyle.Sprint("explorer:"), linkStyle.Sprint(receipt.ExplorerURL))
	}
}

// writeEvents prints decoded events one per line
func writeEvents(out io.Writer, events []domain.DecodedEvent) {
	if len(events) == 0 {
		return
	}
	fmt.Fprintf(out, "  %s\n", labelStyle.Sprint("events:"))
	for _, event := range events {
		fmt.Fprintf(out, "    %s(", event.Name)
		for i, p := range event.Params {
			if i > 0 {
				fmt.Fprint(out, ", ")
			}
			fmt.Fprintf(out, "%s: %s", p.Name, p.Value)
		}
		fmt.Fprintln(out, ")")
	}
}

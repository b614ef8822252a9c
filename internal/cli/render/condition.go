package render

import (
	"fmt"
	"io"
	"time"

	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// EncodeRenderer prints an encoded parameter block
type EncodeRenderer struct {
	out io.Writer
}

// NewEncodeRenderer creates a new encode renderer
func NewEncodeRenderer(out io.Writer) *EncodeRenderer {
	return &EncodeRenderer{out: out}
}

// Render prints only the 0x block so the output can be piped
func (r *EncodeRenderer) Render(result *usecase.EncodeParamsResult) error {
	_, err := fmt.Fprintln(r.out, result.Encoded.Hex())
	return err
}

// CreateRenderer prints the submitted condition and its receipt
type CreateRenderer struct {
	out io.Writer
}

// NewCreateRenderer creates a new create renderer
func NewCreateRenderer(out io.Writer) *CreateRenderer {
	return &CreateRenderer{out: out}
}

// Render prints the create parameters and receipt
func (r *CreateRenderer) Render(result *usecase.CreateConditionResult) error {
	record := result.Record
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Condition created on Kleek at %s", result.Kleek.Address.Hex())))
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("uri:     "), record.MetadataURI)
	fmt.Fprintf(r.out, "  %s %d (%s)\n", labelStyle.Sprint("start:   "), record.Start.Unix(), record.Start.UTC().Format(time.RFC3339))
	fmt.Fprintf(r.out, "  %s %d (%s)\n", labelStyle.Sprint("end:     "), record.End.Unix(), record.End.UTC().Format(time.RFC3339))
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("limit:   "), record.Limit.String())
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("module:  "), addressStyle.Sprint(record.ConditionModule.Hex()))
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprint("params:  "), record.ConditionModuleData.Hex())
	writeReceipt(r.out, result.Receipt)
	writeEvents(r.out, result.Events)
	return nil
}

// WhitelistRenderer prints the result of a whitelist toggle
type WhitelistRenderer struct {
	out io.Writer
}

// NewWhitelistRenderer creates a new whitelist renderer
func NewWhitelistRenderer(out io.Writer) *WhitelistRenderer {
	return &WhitelistRenderer{out: out}
}

// Render prints the module state and receipt
func (r *WhitelistRenderer) Render(result *usecase.WhitelistModuleResult) error {
	state := "whitelisted"
	if !result.Enabled {
		state = "removed from whitelist"
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Condition module %s %s", result.Module.Hex(), state)))
	writeReceipt(r.out, result.Receipt)
	if result.Event == nil {
		fmt.Fprintln(r.out, FormatWarning("No ConditionModuleWhitelisted event found in the receipt"))
		return nil
	}
	fmt.Fprintf(r.out, "  %s enabled=%s\n", labelStyle.Sprint("event:   "), result.Event.Param("enabled"))
	return nil
}

var (
	_ Renderer[*usecase.EncodeParamsResult]    = (*EncodeRenderer)(nil)
	_ Renderer[*usecase.CreateConditionResult] = (*CreateRenderer)(nil)
	_ Renderer[*usecase.WhitelistModuleResult] = (*WhitelistRenderer)(nil)
)

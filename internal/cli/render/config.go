package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{out: out}
}

// relativePath returns the path relative to the current directory when possible
func relativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	return rel
}

// RenderConfig shows the saved overrides next to the effective values
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintln(r.out, FormatWarning("No .kleek/config.local.json file found, using defaults"))
	} else {
		fmt.Fprintln(r.out, "📋 Saved config:")
		fmt.Fprintf(r.out, "  network:         %s\n", orUnset(result.Config.Network))
		confirmations := ""
		if result.Config.Confirmations > 0 {
			confirmations = strconv.FormatUint(result.Config.Confirmations, 10)
		}
		fmt.Fprintf(r.out, "  confirmations:   %s\n", orUnset(confirmations))
		fmt.Fprintf(r.out, "  confirm_timeout: %s\n", orUnset(result.Config.ConfirmTimeout))
	}

	fmt.Fprintln(r.out, "\n⚙️  Effective:")
	fmt.Fprintf(r.out, "  network:         %s\n", result.ActiveNetwork)
	fmt.Fprintf(r.out, "  confirmations:   %d\n", result.Confirmations)
	fmt.Fprintf(r.out, "  confirm_timeout: %s\n", result.ConfirmTimeout)

	fmt.Fprintf(r.out, "\n📁 config file: %s\n", relativePath(result.ConfigPath))
	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set %s to: %s", result.Key, result.Value)))
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", relativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	if result.RemovedValue == "" {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s was not set", result.Key)))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Removed %s (was %s)", result.Key, result.RemovedValue)))
	}
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", relativePath(result.ConfigPath))
	return nil
}

func orUnset(value string) string {
	if value == "" {
		return labelStyle.Sprint("(not set)")
	}
	return value
}

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"

	"github.com/kleek-protocol/kleek-deploy/internal/app"
)

// productionChains hold real funds; state-changing commands ask before sending there
var productionChains = map[uint64]bool{
	1:     true, // Ethereum
	10:    true, // OP Mainnet
	137:   true, // Polygon
	8453:  true, // Base
	42161: true, // Arbitrum One
}

// errAborted is returned when the user declines the confirmation prompt
var errAborted = errors.New("aborted by user")

// confirmSubmission asks for a yes/no before a command sends transactions to a
// production chain. --non-interactive skips the prompt.
func confirmSubmission(appInstance *app.App, action string) error {
	cfg := appInstance.Config
	network := cfg.Network
	if network == nil || !productionChains[network.ChainID] || cfg.NonInteractive {
		return nil
	}

	if !stdinIsTerminal() {
		return fmt.Errorf("%s on %s (chain %d) needs confirmation; rerun with --non-interactive to send without prompting",
			action, network.Name, network.ChainID)
	}

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s on %s (chain %d)", action, network.Name, network.ChainID),
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return errAborted
	}
	return nil
}

// stdinIsTerminal is replaced in tests
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
	"github.com/kleek-protocol/kleek-deploy/internal/domain/config"
	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// Supported verification tools
const (
	ToolHardhat = "hardhat"
	ToolForge   = "forge"
)

var hardhatConfigs = []string{"hardhat.config.ts", "hardhat.config.js", "hardhat.config.cjs", "hardhat.config.mjs"}

// runFunc executes a command in dir and returns its combined output
type runFunc func(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error)

// Verifier submits deployed sources to a block explorer through the project's own
// toolchain: npx hardhat verify or forge verify-contract
type Verifier struct {
	projectRoot string
	apiKey      string
	artifacts   usecase.ArtifactStore
	run         runFunc
	log         *slog.Logger
	now         func() time.Time
}

// NewVerifier creates a verifier rooted at the project directory
func NewVerifier(cfg *config.RuntimeConfig, artifacts usecase.ArtifactStore, log *slog.Logger) *Verifier {
	return &Verifier{
		projectRoot: cfg.ProjectRoot,
		apiKey:      cfg.EtherscanAPIKey,
		artifacts:   artifacts,
		run:         execRun,
		log:         log.With("component", "verifier"),
		now:         time.Now,
	}
}

// Verify runs the verification tool for one deployment. A rejected submission is
// reported in the returned record; an error means no submission was attempted.
func (v *Verifier) Verify(ctx context.Context, deployment *domain.Deployment, network *config.Network, tool string) (*domain.Verification, error) {
	if tool == "" {
		detected, err := v.DetectTool()
		if err != nil {
			return nil, err
		}
		tool = detected
	}

	var (
		name string
		args []string
		err  error
	)
	switch tool {
	case ToolHardhat:
		name = "npx"
		args, err = v.hardhatArgs(ctx, deployment, network)
	case ToolForge:
		name = "forge"
		args = forgeArgs(deployment, network)
	default:
		return nil, fmt.Errorf("unknown verification tool %q (want %s or %s)", tool, ToolHardhat, ToolForge)
	}
	if err != nil {
		return nil, err
	}

	v.log.Debug("running verification", "tool", tool, "cmd", name+" "+strings.Join(args, " "))

	output, err := v.run(ctx, v.projectRoot, v.env(), name, args...)
	if errors.Is(err, exec.ErrNotFound) {
		return nil, fmt.Errorf("%s is not installed: %w", name, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	record := &domain.Verification{Tool: tool, AttemptedAt: v.now().UTC()}
	if verified(string(output)) {
		record.Status = domain.VerificationVerified
		record.URL = network.AddressURL(deployment.Address.Hex())
		return record, nil
	}

	record.Status = domain.VerificationFailed
	record.Reason = strings.TrimSpace(string(output))
	if record.Reason == "" && err != nil {
		record.Reason = err.Error()
	}
	return record, nil
}

// DetectTool picks hardhat when a hardhat config exists, else forge when foundry.toml does
func (v *Verifier) DetectTool() (string, error) {
	for _, name := range hardhatConfigs {
		if fileExists(filepath.Join(v.projectRoot, name)) {
			return ToolHardhat, nil
		}
	}
	if fileExists(filepath.Join(v.projectRoot, "foundry.toml")) {
		return ToolForge, nil
	}
	return "", fmt.Errorf("no hardhat.config or foundry.toml in %s (use --tool)", v.projectRoot)
}

// hardhatArgs passes constructor arguments as decoded values, which is what
// hardhat verify expects on its command line
func (v *Verifier) hardhatArgs(ctx context.Context, deployment *domain.Deployment, network *config.Network) ([]string, error) {
	args := []string{"hardhat", "verify", "--network", network.Name, deployment.Address.Hex()}
	if len(deployment.ConstructorArgs) == 0 {
		return args, nil
	}

	artifact, err := v.artifacts.Get(ctx, deployment.ArtifactName())
	if err != nil {
		return nil, err
	}
	values, err := artifact.ABI.Constructor.Inputs.Unpack(deployment.ConstructorArgs)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s constructor arguments: %w", deployment.ArtifactName(), err)
	}
	for _, value := range values {
		args = append(args, argString(value))
	}
	return args, nil
}

func forgeArgs(deployment *domain.Deployment, network *config.Network) []string {
	contract := deployment.ArtifactName()
	if deployment.Source != "" {
		contract = deployment.Source + ":" + contract
	}

	args := []string{
		"verify-contract",
		deployment.Address.Hex(),
		contract,
		"--chain-id", strconv.FormatUint(network.ChainID, 10),
		"--watch",
	}
	if network.VerifierURL != "" {
		args = append(args, "--verifier-url", network.VerifierURL)
	}
	if len(deployment.ConstructorArgs) > 0 {
		args = append(args, "--constructor-args", hexutil.Encode(deployment.ConstructorArgs))
	}
	return args
}

// env hands the API key to both tools through the environment, never argv
func (v *Verifier) env() []string {
	env := os.Environ()
	if v.apiKey != "" {
		env = append(env, "ETHERSCAN_API_KEY="+v.apiKey, "HARDHAT_VAR_ETHERSCAN_API_KEY="+v.apiKey)
	}
	return env
}

func verified(output string) bool {
	lower := strings.ToLower(output)
	return strings.Contains(lower, "successfully verified") ||
		strings.Contains(lower, "already verified") ||
		strings.Contains(lower, "already been verified")
}

func argString(value any) string {
	switch v := value.(type) {
	case common.Address:
		return v.Hex()
	case *big.Int:
		return v.String()
	case []byte:
		return hexutil.Encode(v)
	case [32]byte:
		return hexutil.Encode(v[:])
	default:
		return fmt.Sprint(v)
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func execRun(ctx context.Context, dir string, env []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = env
	return cmd.CombinedOutput()
}

// Ensure the adapter implements the interface
var _ usecase.ContractVerifier = (*Verifier)(nil)

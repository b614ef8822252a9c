package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleek-protocol/kleek-deploy/internal/domain"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ALCHEMY_API_KEY", "")
	os.Unsetenv("ALCHEMY_API_KEY")

	out, err := executeRoot(t, "encode", "-q", "--fee", "10000", "--token", "0x036cbd53842c5426634e7929541ec2318f3dcf7e")
	require.NoError(t, err)

	want := "0x" +
		strings.Repeat("0", 60) + "2710" +
		strings.Repeat("0", 24) + "036cbd53842c5426634e7929541ec2318f3dcf7e"
	assert.Equal(t, want+"\n", out)
}

func TestEncodeCommandRejectsNumericToken(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := executeRoot(t, "encode", "-q", "--fee", "10000", "--token", "3600000000000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}

func TestEncodeCommandUsesConfiguredToken(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kleek.toml"), []byte(`
[contracts]
token = "0x036cbd53842c5426634e7929541ec2318f3dcf7e"
`), 0644))
	t.Chdir(dir)

	out, err := executeRoot(t, "encode", "-q", "--fee", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "036cbd53842c5426634e7929541ec2318f3dcf7e"))
}

func TestNetworksCommandWorksOffline(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ALCHEMY_API_KEY", "")
	os.Unsetenv("ALCHEMY_API_KEY")

	out, err := executeRoot(t, "networks", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "localhost")
	assert.Contains(t, out, "31337")
	assert.Contains(t, out, "ALCHEMY_API_KEY")
}

func TestCreateRequiresProject(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := executeRoot(t, "create", "--uri", "u", "--start", "1", "--end", "2", "--fee", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in a kleek project")
}

func TestCommandTree(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"encode"},
		{"create"},
		{"whitelist"},
		{"deploy", "share-deposit"},
		{"deploy", "kleek"},
		{"deployments"},
		{"verify"},
		{"networks"},
		{"config", "set"},
		{"config", "remove"},
		{"version"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	encode, _, _ := root.Find([]string{"encode"})
	assert.True(t, isOffline(encode))
	create, _, _ := root.Find([]string{"create"})
	assert.False(t, isOffline(create))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{"unix seconds", "1717200000", time.Unix(1717200000, 0).UTC(), false},
		{"rfc3339", "2024-06-01T00:00:00Z", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"garbage", "tomorrow", time.Time{}, true},
		{"epoch", "0", time.Unix(0, 0).UTC(), false},
		{"negative unix seconds", "-1", time.Time{}, true},
		{"before the epoch", "1969-12-31T23:59:59Z", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimestamp("start", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseUint(t *testing.T) {
	n, err := parseUint("limit", "0x64")
	require.NoError(t, err)
	assert.Equal(t, int64(100), n.Int64())

	_, err = parseUint("limit", "-1")
	assert.Error(t, err)
}

func TestConfigSetIsReadBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kleek.toml"), []byte(""), 0644))
	t.Chdir(dir)
	t.Setenv("KLEEK_NETWORK", "")
	os.Unsetenv("KLEEK_NETWORK")

	out, err := executeRoot(t, "config", "set", "network", "localhost")
	require.NoError(t, err)
	assert.Contains(t, out, "Set network to: localhost")
	assert.FileExists(t, filepath.Join(dir, ".kleek", "config.local.json"))

	out, err = executeRoot(t, "config")
	require.NoError(t, err)
	assert.Regexp(t, `Effective:\s+network:\s+localhost`, out)

	_, err = executeRoot(t, "config", "set", "network", "mainnet")
	assert.ErrorContains(t, err, "unknown network")

	out, err = executeRoot(t, "config", "remove", "network")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed network (was localhost)")
}

func TestProductionChainNeedsConfirmation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kleek.toml"), []byte(""), 0644))
	t.Chdir(dir)
	t.Setenv("ALCHEMY_API_KEY", "test-key")

	isTerminal := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = isTerminal })

	module := "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"

	_, err := executeRoot(t, "whitelist", module, "-q", "--network", "base")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs confirmation")
	assert.Contains(t, err.Error(), "chain 8453")

	// testnets never prompt, and --non-interactive skips the prompt; both fail later
	// because no Kleek address is known
	for _, args := range [][]string{
		{"whitelist", module, "-q", "--network", "base_sepolia"},
		{"whitelist", module, "-q", "--network", "base", "--non-interactive"},
	} {
		_, err := executeRoot(t, args...)
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "needs confirmation", strings.Join(args, " "))
	}
}

func TestMalformedKeyOnlyFailsSigning(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kleek.toml"), []byte(""), 0644))
	t.Chdir(dir)
	t.Setenv("PRIVATE_KEY", "not-a-key")

	out, err := executeRoot(t, "encode", "-q", "--fee", "10000", "--token", "0x036cbd53842c5426634e7929541ec2318f3dcf7e")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0x"))

	_, err = executeRoot(t, "create", "-q", "--network", "localhost",
		"--kleek", "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"--module", "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		"--uri", "ipfs://condition", "--start", "1700000000", "--end", "1700086400",
		"--fee", "10000", "--token", "0x036cbd53842c5426634e7929541ec2318f3dcf7e")
	var submissionErr *domain.SubmissionError
	require.ErrorAs(t, err, &submissionErr)
	assert.Equal(t, "create", submissionErr.Method)
	assert.Contains(t, err.Error(), "invalid private key")
	assert.NotContains(t, err.Error(), "not-a-key")
}

func TestModuleValues(t *testing.T) {
	configured := "0x036cbd53842c5426634e7929541ec2318f3dcf7e"

	values, err := moduleValues([]string{"10000", "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"}, "", "", configured)
	require.NoError(t, err)
	assert.Equal(t, []any{"10000", "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"}, values)

	values, err = moduleValues(nil, "1", "", configured)
	require.NoError(t, err)
	assert.Equal(t, []any{"1", configured}, values)

	_, err = moduleValues(nil, "", "", configured)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--fee")
}

func TestCreateTakesPositionalValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kleek.toml"), []byte(""), 0644))
	t.Chdir(dir)
	t.Setenv("PRIVATE_KEY", "")
	os.Unsetenv("PRIVATE_KEY")

	base := []string{"create", "-q", "--network", "localhost",
		"--kleek", "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"--module", "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		"--uri", "ipfs://condition", "--start", "1700000000", "--end", "1700086400"}

	_, err := executeRoot(t, base...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--fee")

	// values are encoded before signing, so a bad value never reaches the signer
	_, err = executeRoot(t, append(base, "10000", "3600000000000000000")...)
	var formatErr *domain.EncodingFormatError
	require.ErrorAs(t, err, &formatErr)

	_, err = executeRoot(t, append(base, "10000", "0x036cbd53842c5426634e7929541ec2318f3dcf7e")...)
	assert.ErrorIs(t, err, domain.ErrNoSigner)
}

func TestVerifyRefusesLocalChain(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kleek.toml"), []byte(""), 0644))
	t.Chdir(dir)

	_, err := executeRoot(t, "verify", "-q", "--all", "--network", "localhost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no block explorer")

	_, err = executeRoot(t, "verify", "-q", "--network", "localhost", "a", "b")
	require.Error(t, err)
}

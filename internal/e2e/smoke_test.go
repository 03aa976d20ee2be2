package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runBA(t, binaryPath, home,
		"auth", "set",
		"--profile", "smoke",
		"--inline", "SESSDATA=smoke-session-0001; bili_jct=smoke-csrf-0001",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runBA(t, binaryPath, home, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "smoke")
	assert.Contains(t, stdout, "smok…0001")

	stdout, stderr, err = runBA(t, binaryPath, home, "auth", "show", "--profile", "smoke", "--reveal")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "SESSDATA=smoke-session-0001; bili_jct=smoke-csrf-0001\n", stdout)

	info, err := os.Stat(filepath.Join(home, ".config", "bilibili-accounts", "auth.toml"))
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ba-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ba")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ba binary: %s", string(output))
	return binaryPath
}

func runBA(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "XDG_CONFIG_HOME=", "BA_LOGIN_PROXY=no")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

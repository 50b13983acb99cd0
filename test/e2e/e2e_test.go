package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	yshellBin string
	projRoot  string
)

func TestMain(m *testing.M) {
	// Build yshell binary once for all tests
	tmpBinDir, err := os.MkdirTemp("", "yshell-bin")
	if err != nil {
		panic(err)
	}

	yshellBin = filepath.Join(tmpBinDir, "yshell")

	// Determine project root
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot determine current file path")
	}
	projRoot = filepath.Join(filepath.Dir(thisFile), "..", "..")

	cmd := exec.Command("go", "build", "-o", yshellBin, "./cmd/yshell")
	cmd.Dir = projRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out))
	}

	code := m.Run()
	_ = os.RemoveAll(tmpBinDir) // Best effort cleanup
	os.Exit(code)
}

// YShellResult captures one finished yshell process
type YShellResult struct {
	Stdout string
	Stderr string
	Status int
}

// runYShell feeds script to a fresh yshell process on stdin
func runYShell(t *testing.T, script string, args ...string) YShellResult {
	t.Helper()

	cmd := exec.Command(yshellBin, args...)
	cmd.Stdin = strings.NewReader(script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	status := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}
	return YShellResult{Stdout: stdout.String(), Stderr: stderr.String(), Status: status}
}

// writeFile writes content to name inside a per-test temp dir and returns its path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestE2EWalkthrough(t *testing.T) {
	res := runYShell(t, strings.Join([]string{
		"mkdir docs",
		"make docs/readme hello world",
		"cd docs",
		"pwd",
		"cat readme",
		"ls",
	}, "\n"))

	assert.Equal(t, 0, res.Status, res.Stderr)
	assert.Equal(t, strings.Join([]string{
		"/docs/",
		"hello world",
		"/docs/:",
		"     2       3  .",
		"     1       3  ..",
		"     3      12  readme",
		"",
	}, "\n"), res.Stdout)
}

func TestE2EFailureStatus(t *testing.T) {
	res := runYShell(t, "cat missing\necho still running\n")

	assert.Equal(t, 1, res.Status)
	assert.Equal(t, "still running\n", res.Stdout)
	assert.Contains(t, res.Stderr, "yshell: cat: read missing: no such file or directory")
}

func TestE2EExitStatus(t *testing.T) {
	res := runYShell(t, "exit 4\necho unreachable\n")

	assert.Equal(t, 4, res.Status)
	assert.Empty(t, res.Stdout)
}

func TestE2EEcho(t *testing.T) {
	res := runYShell(t, "prompt $\necho hi\n", "--echo")

	assert.Equal(t, 0, res.Status, res.Stderr)
	assert.Equal(t, "% prompt $\n$ echo hi\nhi\n$ ", res.Stdout)
}

func TestE2ENodesFile(t *testing.T) {
	nodes := writeFile(t, "nodes.json", `[
		{"type": "dir", "path": "/etc"},
		{"type": "file", "path": "/etc/motd", "content": ["welcome", "home"]},
		{"type": "file", "path": "/var/log/messages", "content": []}
	]`)

	res := runYShell(t, "cat /etc/motd\nlsr /var\n", "--nodes", nodes)

	assert.Equal(t, 0, res.Status, res.Stderr)
	assert.Equal(t, strings.Join([]string{
		"welcome home",
		"/var/:",
		"     4       3  .",
		"     1       4  ..",
		"     5       3  log/",
		"/var/log/:",
		"     5       3  .",
		"     4       3  ..",
		"     6       0  messages",
		"",
	}, "\n"), res.Stdout)
}

func TestE2EConfigFile(t *testing.T) {
	cfg := writeFile(t, "yshell.toml", "prompt = \"cfg> \"\nmax_name_len = 4\n")

	res := runYShell(t, "mkdir toolong\nmkdir ok\n", "--config", cfg, "--echo")

	assert.Equal(t, 1, res.Status)
	assert.Equal(t, "cfg> mkdir toolong\ncfg> mkdir ok\ncfg> ", res.Stdout)
	assert.Contains(t, res.Stderr, "invalid name")
}

func TestE2EScriptArgument(t *testing.T) {
	script := writeFile(t, "script.ysh", "# comment\nmkdir a\nmake a/b x y z\ncat /a/b\n")

	res := runYShell(t, "echo ignored\n", script)

	assert.Equal(t, 0, res.Status, res.Stderr)
	assert.Equal(t, "x y z\n", res.Stdout)
}

func TestE2EBadNodesFile(t *testing.T) {
	nodes := writeFile(t, "nodes.txt", "")

	res := runYShell(t, "", "--nodes", nodes)

	assert.Equal(t, 1, res.Status)
	assert.Contains(t, res.Stderr, "unknown nodes file extension")
}

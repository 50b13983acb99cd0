package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brettbedarf/inodefs"
	"github.com/brettbedarf/inodefs/config"
	"github.com/brettbedarf/inodefs/filesystem"
	"github.com/brettbedarf/inodefs/internal/mocks"
	"github.com/brettbedarf/inodefs/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *config.Config {
	return &config.Config{
		LogLvl:     util.InfoLevel,
		Prompt:     "% ",
		MaxNameLen: config.DefaultMaxNameLen,
		Color:      false,
	}
}

type testShell struct {
	*Shell
	fs     *filesystem.FileSystem
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestShell(t *testing.T, opts ...Option) *testShell {
	t.Helper()
	cfg := createTestConfig()
	fs := filesystem.NewFS(cfg)
	var stdout, stderr bytes.Buffer
	opts = append([]Option{WithOutput(&stdout, &stderr)}, opts...)
	return &testShell{
		Shell:  New(fs, cfg, nil, opts...),
		fs:     fs,
		stdout: &stdout,
		stderr: &stderr,
	}
}

// run executes each line and fails the test on any command error
func (ts *testShell) run(t *testing.T, lines ...string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, ts.Exec(line), line)
	}
}

func TestExec_Walkthrough(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t)
	ts.run(t,
		"mkdir docs",
		"make /docs/readme hello world",
		"cat docs/readme",
		"cd docs",
		"pwd",
		"ls",
		"ls /",
	)

	want := strings.Join([]string{
		"hello world",
		"/docs/",
		"/docs/:",
		"     2       3  .",
		"     1       3  ..",
		"     3      12  readme",
		"/:",
		"     1       3  .",
		"     1       3  ..",
		"     2       3  docs/",
		"",
	}, "\n")
	assert.Equal(t, want, ts.stdout.String())
	assert.Empty(t, ts.stderr.String())
	assert.Equal(t, 0, ts.ExitStatus())
}

func TestExec_Lsr(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t)
	ts.run(t, "mkdir a", "mkdir a/b", "make a/f x", "lsr /")

	want := strings.Join([]string{
		"/:",
		"     1       3  .",
		"     1       3  ..",
		"     2       4  a/",
		"/a/:",
		"     2       4  .",
		"     1       3  ..",
		"     3       2  b/",
		"     4       2  f",
		"/a/b/:",
		"     3       2  .",
		"     2       4  ..",
		"",
	}, "\n")
	assert.Equal(t, want, ts.stdout.String())
}

func TestExec_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{"unknown command", "frobnicate x", "yshell: frobnicate: no such command"},
		{"cat missing", "cat nope", "yshell: cat: read nope: no such file or directory"},
		{"cat no args", "cat", "yshell: cat: usage: cat pathname..."},
		{"cat directory", "cat /", "not a file"},
		{"cd file", "cd f", "yshell: cd: chdir f: not a directory"},
		{"ls file", "ls f", "not a directory"},
		{"make existing", "make f again", "already exists"},
		{"make through file", "make f/g", "not a directory"},
		{"mkdir no args", "mkdir", "usage: mkdir pathname"},
		{"rm root", "rm /", "reserved name"},
		{"rm non-empty", "rm d", "directory not empty"},
		{"exit too many", "exit 1 2", "usage: exit [status]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts := newTestShell(t)
			ts.run(t, "make f word", "mkdir d", "make d/x")

			err := ts.Exec(tt.line)

			require.Error(t, err)
			assert.Contains(t, ts.stderr.String(), tt.want)
			assert.Equal(t, 1, ts.ExitStatus())
			assert.False(t, ts.Exited())
		})
	}
}

func TestExec_CommentsAndBlankLines(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t)
	ts.run(t, "", "   ", "# mkdir nope", "#mkdir nope")

	assert.Empty(t, ts.stdout.String())
	assert.Equal(t, 1, ts.fs.NodeCount())
}

func TestExec_Prompt(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t)
	ts.run(t, "prompt my   shell>")

	assert.Equal(t, "my shell> ", ts.fs.Prompt())
}

func TestExec_RemoveMovesCwd(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t)
	ts.run(t, "mkdir a", "mkdir a/b", "cd a/b", "cd /", "rm a/b", "mkdir a/b", "cd a/b", "rmr /a", "pwd")

	assert.Equal(t, "/\n", ts.stdout.String())
	assert.Equal(t, 1, ts.fs.NodeCount())
}

func TestExec_Echo(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t)
	ts.run(t, "echo  hello   there ", "echo")

	assert.Equal(t, "hello there\n\n", ts.stdout.String())
}

func TestExec_Pwd_Mock(t *testing.T) {
	t.Parallel()

	fs := &mocks.MockFileSystem{}
	cwd := &mocks.MockNode{}
	fs.On("Cwd").Return(cwd)
	fs.On("PathOf", cwd).Return("/somewhere/", nil)

	var stdout, stderr bytes.Buffer
	sh := New(fs, createTestConfig(), nil, WithOutput(&stdout, &stderr))

	require.NoError(t, sh.Exec("pwd"))
	assert.Equal(t, "/somewhere/\n", stdout.String())
	fs.AssertExpectations(t)
}

func TestExec_CdDefaultsToRoot_Mock(t *testing.T) {
	t.Parallel()

	fs := &mocks.MockFileSystem{}
	fs.On("ChangeDirectory", inodefs.Abs()).Return(nil).Once()

	sh := New(fs, createTestConfig(), nil, WithOutput(&bytes.Buffer{}, &bytes.Buffer{}))

	require.NoError(t, sh.Exec("cd"))
	fs.AssertExpectations(t)
}

func TestExec_LsReadsListingOnce_Mock(t *testing.T) {
	t.Parallel()

	fs := &mocks.MockFileSystem{}
	dir := &mocks.MockNode{}
	dir.On("ID").Return(uint64(7))
	dir.On("Type").Return(inodefs.DirectoryType)
	dir.On("Size").Return(2)
	fs.On("ListDirectory", inodefs.Rel("d")).Return(inodefs.Listing{
		Path:    "/d/",
		Entries: []inodefs.Entry{{Name: ".", Node: dir}},
	}, nil).Once()

	var stdout bytes.Buffer
	sh := New(fs, createTestConfig(), nil, WithOutput(&stdout, &bytes.Buffer{}))

	require.NoError(t, sh.Exec("ls d"))
	assert.Equal(t, "/d/:\n     7       2  .\n", stdout.String())
	fs.AssertExpectations(t)
	fs.AssertNotCalled(t, "Resolve", inodefs.Rel("d"))
}

func TestRun_LongLine(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t)
	words := strings.Repeat("w ", 40000)

	status, err := ts.Run(strings.NewReader("make f " + words + "\necho after\n"))

	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "after\n", ts.stdout.String())
	content, err := ts.fs.ReadFile(inodefs.Rel("f"))
	require.NoError(t, err)
	assert.Len(t, content, 40000)
}

func TestRun_LastLineWithoutNewline(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t)

	status, err := ts.Run(strings.NewReader("echo one\r\necho two"))

	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "one\ntwo\n", ts.stdout.String())
}

func TestRun(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t)
	script := "make f a b\ncat f\ncat missing\necho after\n"

	status, err := ts.Run(strings.NewReader(script))

	require.NoError(t, err)
	assert.Equal(t, 1, status)
	assert.Equal(t, "a b\nafter\n", ts.stdout.String())
	assert.Contains(t, ts.stderr.String(), "no such file or directory")
}

func TestRun_Exit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script string
		status int
	}{
		{"explicit status", "exit 3\necho unreachable\n", 3},
		{"keeps failure status", "cat missing\nexit\necho unreachable\n", 1},
		{"non-numeric", "exit later\n", badExitStatus},
		{"end of input", "echo done\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts := newTestShell(t)

			status, err := ts.Run(strings.NewReader(tt.script))

			require.NoError(t, err)
			assert.Equal(t, tt.status, status)
			assert.NotContains(t, ts.stdout.String(), "unreachable")
		})
	}
}

func TestRun_Echo(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, WithEcho(true))

	_, err := ts.Run(strings.NewReader("prompt >\necho hi\n"))

	require.NoError(t, err)
	assert.Equal(t, "% prompt >\n> echo hi\nhi\n> ", ts.stdout.String())
}

func TestRun_Interactive(t *testing.T) {
	t.Parallel()

	ts := newTestShell(t, WithInteractive(true))

	_, err := ts.Run(strings.NewReader("echo hi\n"))

	require.NoError(t, err)
	assert.Equal(t, "% hi\n% \n", ts.stdout.String())
}

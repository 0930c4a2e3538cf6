package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paio "github.com/dzonerzy/go-pararg/io"
	"github.com/dzonerzy/go-pararg/pararg"
)

func runCapture(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var out, errOut bytes.Buffer
	m := paio.New().WithOut(&out).WithErr(&errOut)
	code = run(append([]string{"pf"}, args...), m)
	return code, out.String(), errOut.String()
}

func TestRun_Document(t *testing.T) {
	for _, args := range [][]string{
		{"-D", "sheet.pf"},
		{"--document", "sheet.pf"},
		{"--document=sheet.pf"},
		{"sheet.pf"},
	} {
		code, out, errOut := runCapture(t, args...)
		assert.Equal(t, 0, code, "args %v", args)
		assert.Contains(t, out, "loading sheet.pf", "args %v", args)
		assert.Empty(t, errOut, "args %v", args)
	}
}

func TestRun_BlankDocumentReadonly(t *testing.T) {
	code, out, _ := runCapture(t, "-R")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "creating a new blank document")
	assert.Contains(t, out, "read-only mode")
}

func TestRun_Help(t *testing.T) {
	code, out, _ := runCapture(t, "--help")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Usage:")
	assert.NotContains(t, out, "creating", "help stops the program")

	code, out, _ = runCapture(t, "-H", "doc")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Document Flag (-D, --document)")

	_, out, _ = runCapture(t, "--help=read")
	assert.Contains(t, out, "Read-Only Flag")

	_, out, _ = runCapture(t, "-H", "nothing")
	assert.Contains(t, out, "Usage:")
}

func TestRun_UndefinedFlag(t *testing.T) {
	code, out, errOut := runCapture(t, "--read")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Undefined flag `--read`")
	assert.Contains(t, errOut, "~ readonly")
}

func TestRun_MissingArgument(t *testing.T) {
	code, _, errOut := runCapture(t, "-D")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Missing argument for `document`")
	assert.Contains(t, errOut, "$ pf --help document")
}

func TestRun_Malformed(t *testing.T) {
	code, _, errOut := runCapture(t, "-", "sheet.pf")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Invalid input: `-`")
}

func TestRun_Verbose(t *testing.T) {
	code, out, _ := runCapture(t, "-V", "-D", "sheet.pf")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `[DEBUG] pararg: argv[2] "-D" is short`)
	assert.NotContains(t, out, `argv[1] "-V"`, "tracing starts after the flag")
}

func TestRun_ConfigFault(t *testing.T) {
	saved := options
	t.Cleanup(func() { options = saved })
	options = []pararg.Option{{Name: "document", ID: 'D'}, {Name: "", ID: 'E'}}

	code, _, errOut := runCapture(t, "-D", "x")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "[PA:pf]: cannot continue...")
	assert.Contains(t, errOut, "at: 2nd option")
}

func TestOptionsAreValid(t *testing.T) {
	require.NoError(t, pararg.Validate(options))
	require.Len(t, helpPages, len(options), "every option needs a help page")
	for i, opt := range options {
		assert.Equal(t, opt.Name, helpPages[i].flag)
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"nbnurn"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestCheck(t *testing.T) {
	assert := assert.New(t)

	out, _, err := runApp(t, "check", "urn:nbn:de:bsz-47110815")
	assert.NoError(err)
	assert.Equal("valid\n", out)

	_, _, err = runApp(t, "check", "urn:nbn:invalidnss")
	assert.Error(err)

	_, _, err = runApp(t, "check")
	assert.Error(err)
}

func TestInspect(t *testing.T) {
	assert := assert.New(t)

	out, _, err := runApp(t, "inspect", "URN:NBN:se:uu:diva-3475")
	assert.NoError(err)
	assert.Contains(out, "URN: urn:nbn:se:uu:diva-3475\n")
	assert.Contains(out, "Country Code: se\n")
	assert.Contains(out, "Subnamespace Prefix: uu:diva\n")
	assert.Contains(out, "National Book Number: 3475\n")

	out, _, err = runApp(t, "inspect", "urn:nbn:hu-3006")
	assert.NoError(err)
	assert.Contains(out, "Subnamespace Prefix: (none)\n")
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	out, _, err := runApp(t, "build", "--country", "de", "--prefix", "bsz", "--nbn", "47110815")
	assert.NoError(err)
	assert.Equal("urn:nbn:de:bsz-47110815\n", out)

	out, _, err = runApp(t, "build", "--country", "hu", "--nbn", "3006")
	assert.NoError(err)
	assert.Equal("urn:nbn:hu-3006\n", out)

	_, _, err = runApp(t, "build", "--country", "de", "--nbn", "47-11")
	assert.Error(err)
}

func TestNormalize(t *testing.T) {
	assert := assert.New(t)

	out, _, err := runApp(t, "normalize", "URN:NBN:fi-fe201003181510")
	assert.NoError(err)
	assert.Equal("urn:nbn:fi-fe201003181510\n", out)
}

func TestCheckFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "urns.txt")
	content := strings.Join([]string{
		"# comment",
		"urn:nbn:de:bsz-47110815",
		"",
		"urn:nbn:se:uu:diva-3475",
	}, "\n")
	assert.NoError(os.WriteFile(path, []byte(content), 0o644))

	out, _, err := runApp(t, "check-file", path)
	assert.NoError(err)
	assert.Equal("checked 2 identifiers, 0 invalid\n", out)

	out, _, err = runApp(t, "check-file", "--json", path)
	assert.NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(lines, 2)
	assert.Contains(lines[1], `"subnamespace_prefix":"uu:diva"`)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	assert.NoError(os.WriteFile(bad, []byte("urn:nbn:hu-3006\nurn:non-nbn:foo\n"), 0o644))
	out, stderr, err := runApp(t, "check-file", bad)
	assert.Error(err)
	assert.Equal("checked 2 identifiers, 1 invalid\n", out)
	assert.Contains(stderr, "invalid NBN-URN")
	assert.Contains(stderr, "line=2")
}

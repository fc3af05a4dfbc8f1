package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEmbedded(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "consistent across [en-US fr]")
}

func TestRunReportsIssues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en-US.ftl"), []byte("hello = Hello {$name}\nbye = Bye\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.ftl"), []byte("hello = Bonjour\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-dir", dir}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "fr: bye: missing key (defined in en-US)")
	assert.Contains(t, stdout.String(), "fr: hello: missing {$name} (compared to en-US)")
	assert.Contains(t, stderr.String(), "2 issue(s)")
}

func TestRunLoadError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-dir", t.TempDir()}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "base locale")
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
}

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "0.4.0"
	commit = "9f1c2ab"
	date = "2026-10-19"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"--config", "/nonexistent/config.yaml", "version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "designtools 0.4.0")
	require.Contains(t, output, "9f1c2ab")
	require.Contains(t, output, "2026-10-19")
}

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "replaces current value", args: []string{"p-2 w-4", "width", "8"}, want: "p-2 w-8\n"},
		{name: "negative margin", args: []string{"p-2 mt-1", "marginTop", "-2"}, want: "p-2 -mt-2\n"},
		{name: "appends missing property", args: []string{"p-2", "height", "10"}, want: "p-2 h-10\n"},
		{name: "empty value removes", args: []string{"text-sm font-bold", "fontSize", ""}, want: "font-bold\n"},
		{name: "prefixless family", args: []string{"p-2 lowercase", "textTransform", "uppercase"}, want: "p-2 uppercase\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, append([]string{"set"}, tt.args...)...)
			require.NoError(t, err)
			require.Equal(t, tt.want, stdout)
		})
	}
}

func TestSetCommandNegativeValueWithFlags(t *testing.T) {
	stdout, _, err := executeCommand(t, "set", "--diff", "p-2 mt-1", "marginTop", "-2")
	require.NoError(t, err)
	require.Contains(t, stdout, "-mt-1")
	require.Contains(t, stdout, "+-mt-2")

	stdout, _, err = executeCommand(t, "--log-level", "warn", "set", "p-2 w-4", "marginLeft", "-4")
	require.NoError(t, err)
	require.Equal(t, "p-2 w-4 -ml-4\n", stdout)
}

func TestSetCommandRejectsMultiTokenValue(t *testing.T) {
	_, _, err := executeCommand(t, "set", "p-2 w-4", "width", "8 bg-red-500")
	require.Error(t, err)
	require.Contains(t, err.Error(), "single token")
}

func TestSetCommandRejectsUnknownField(t *testing.T) {
	_, _, err := executeCommand(t, "set", "p-2", "zIndex", "10")
	require.Error(t, err)
	require.Contains(t, err.Error(), "designtools fields")
}

func TestSetCommandRejectsValueOutsideCatalog(t *testing.T) {
	_, _, err := executeCommand(t, "set", "text-sm", "fontSize", "huge")
	require.Error(t, err)
	require.Contains(t, err.Error(), "fontSize")
}

func TestSetCommandUsesConfiguredPrefixes(t *testing.T) {
	path := writeFile(t, "config.yaml", "version: \"1.0\"\nprefixes:\n  width: size\n")

	stdout, _, err := executeCommand(t, "--config", path, "set", "size-4 p-2", "width", "8")
	require.NoError(t, err)
	require.Equal(t, "size-8 p-2\n", stdout)
}

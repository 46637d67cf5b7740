package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldsCommandJSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "fields", "--json")
	require.NoError(t, err)

	var got []fieldDescription
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 18)

	byName := make(map[string]fieldDescription, len(got))
	for _, d := range got {
		byName[d.Field] = d
	}
	require.Equal(t, "w", byName["width"].Prefix)
	require.Empty(t, byName["width"].Values)
	require.Equal(t, "", byName["textTransform"].Prefix)
	require.Contains(t, byName["textTransform"].Values, "uppercase")
	require.Equal(t, "text", byName["fontSize"].Prefix)
}

func TestFieldsCommandTable(t *testing.T) {
	stdout, _, err := executeCommand(t, "fields")
	require.NoError(t, err)
	require.Contains(t, stdout, "marginTop")
	require.Contains(t, stdout, "(no prefix)")
}

func TestSummarizeValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a, b", summarizeValues([]string{"a", "b"}))
	require.Equal(t, "1, 2, 3, 4, 5, 6, ... (8 values)", summarizeValues([]string{"1", "2", "3", "4", "5", "6", "7", "8"}))
}

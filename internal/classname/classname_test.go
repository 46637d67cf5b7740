package classname

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		className string
		oldToken  string
		newToken  string
		expected  string
	}{
		{"insert into empty", "", "", "w-4", "w-4"},
		{"remove", "p-2 w-4 mt-1", "w-4", "", "p-2 mt-1"},
		{"replace keeps position", "p-2 w-4 mt-1", "w-4", "w-8", "p-2 w-8 mt-1"},
		{"absent token appends", "p-2", "w-4", "w-8", "p-2 w-8"},
		{"whitespace resilience", "  p-2   w-4  ", "w-4", "w-8", "p-2 w-8"},
		{"empty old appends", "p-2", "", "w-4", "p-2 w-4"},
		{"empty both normalizes", " p-2\tw-4\n", "", "", "p-2 w-4"},
		{"remove absent is noop", "p-2  mt-1", "w-4", "", "p-2 mt-1"},
		{"only first duplicate", "w-4 p-2 w-4", "w-4", "w-8", "w-8 p-2 w-4"},
		{"remove first duplicate", "w-4 p-2 w-4", "w-4", "", "p-2 w-4"},
		{"negative tokens", "-mt-2 p-2", "-mt-2", "-mt-4", "-mt-4 p-2"},
		{"no partial match", "w-40 p-2", "w-4", "w-8", "w-40 p-2 w-8"},
		{"remove last token", "w-4", "w-4", "", ""},
		{"whitespace-only tokens are empty", "p-2", "  ", " ", "p-2"},
		{"padded tokens are trimmed", "p-2 w-4", " w-4 ", " w-8 ", "p-2 w-8"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, Replace(tt.className, tt.oldToken, tt.newToken))
		})
	}
}

func TestReplacePreservesOtherTokens(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"flex items-center p-2 w-4 mt-1 text-sm",
		"w-4",
		"a b w-4 c d w-4 e",
	}

	for _, input := range inputs {
		before := Tokens(input)
		out := Tokens(Replace(input, "w-4", "w-8"))
		require.Len(t, out, len(before))

		idx := indexOf(before, "w-4")
		require.Equal(t, "w-8", out[idx])
		for i := range before {
			if i == idx {
				continue
			}
			require.Equal(t, before[i], out[i])
		}
	}
}

func TestReplaceRemovingAbsentTokenOnlyNormalizes(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "p-2", " p-2   mt-1 ", "a\tb\nc"} {
		require.Equal(t, Normalize(input), Replace(input, "missing-token", ""))
	}
}

func TestNormalizeIsIdempotentThroughReplace(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "  x  ", "p-2   w-4", "\tflex\n\ngrid "} {
		normalized := Normalize(input)
		require.Equal(t, normalized, Replace(normalized, "", ""))
		require.Equal(t, normalized, Normalize(normalized))
	}
}

func TestReplaceIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	const className = "p-2 w-4 w-4 mt-1"
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = Replace(className, "w-4", "")
				return
			}
			results[i] = Replace(className, "w-4", "w-8")
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if i%2 == 0 {
			require.Equal(t, "p-2 w-4 mt-1", got)
			continue
		}
		require.Equal(t, "p-2 w-8 w-4 mt-1", got)
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	require.True(t, Contains("p-2 w-4", "w-4"))
	require.True(t, Contains("p-2 w-4", " w-4 "))
	require.False(t, Contains("p-2 w-40", "w-4"))
	require.False(t, Contains("p-2", ""))
}

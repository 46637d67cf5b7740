package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/alexisbeaulieu97/designtools/internal/classname"
)

// ClassDiff renders a unified-style diff of two class strings with one token
// per line. Returns an empty string when the strings hold the same tokens in
// the same order.
func ClassDiff(before, after, beforeLabel, afterLabel string) string {
	beforeTokens := classname.Tokens(before)
	afterTokens := classname.Tokens(after)
	if strings.Join(beforeTokens, " ") == strings.Join(afterTokens, " ") {
		return ""
	}

	dmp := diffmatchpatch.New()
	beforeText := joinLines(beforeTokens)
	afterText := joinLines(afterTokens)

	chars1, chars2, lines := dmp.DiffLinesToChars(beforeText, afterText)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", len(beforeTokens), len(afterTokens))

	for _, d := range diffs {
		marker := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			marker = "-"
		case diffmatchpatch.DiffInsert:
			marker = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(marker)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	return buf.String()
}

func joinLines(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return strings.Join(tokens, "\n") + "\n"
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

package classname

// TokenDiff lists the tokens an edit removed and added, in class-string order.
type TokenDiff struct {
	Removed []string
	Added   []string
}

// Empty reports whether the edit changed nothing but whitespace.
func (d TokenDiff) Empty() bool {
	return len(d.Removed) == 0 && len(d.Added) == 0
}

// Diff compares two class strings as multisets of tokens.
func Diff(before, after string) TokenDiff {
	remaining := make(map[string]int)
	for _, t := range Tokens(after) {
		remaining[t]++
	}

	var diff TokenDiff
	for _, t := range Tokens(before) {
		if remaining[t] > 0 {
			remaining[t]--
			continue
		}
		diff.Removed = append(diff.Removed, t)
	}

	seen := make(map[string]int)
	for _, t := range Tokens(before) {
		seen[t]++
	}
	for _, t := range Tokens(after) {
		if seen[t] > 0 {
			seen[t]--
			continue
		}
		diff.Added = append(diff.Added, t)
	}
	return diff
}

// Package classname edits utility-class attribute values one token at a time.
//
// A class string is an ordered, whitespace-separated list of tokens. Every
// function here is pure: inputs are never mutated and the result is always a
// freshly normalized string, so callers may use them from any goroutine.
package classname

import "strings"

// Tokens splits a class string into its non-empty tokens, in order.
func Tokens(className string) []string {
	return strings.Fields(className)
}

// Normalize collapses whitespace runs to single spaces and trims both ends.
func Normalize(className string) string {
	return strings.Join(Tokens(className), " ")
}

// Contains reports whether token appears in the class string.
func Contains(className, token string) bool {
	return indexOf(Tokens(className), strings.TrimSpace(token)) >= 0
}

// Replace swaps the first occurrence of oldToken for newToken.
//
// An empty oldToken, or one that is not present, turns the edit into an append
// of newToken. An empty newToken removes oldToken instead of replacing it. Other
// tokens keep their relative order, duplicates included.
func Replace(className, oldToken, newToken string) string {
	tokens := Tokens(className)
	oldToken = strings.TrimSpace(oldToken)
	newToken = strings.TrimSpace(newToken)

	idx := -1
	if oldToken != "" {
		idx = indexOf(tokens, oldToken)
	}

	switch {
	case idx >= 0 && newToken != "":
		tokens[idx] = newToken
	case idx >= 0:
		tokens = append(tokens[:idx], tokens[idx+1:]...)
	case newToken != "":
		tokens = append(tokens, newToken)
	}

	return strings.Join(tokens, " ")
}

func indexOf(tokens []string, token string) int {
	if token == "" {
		return -1
	}
	for i, t := range tokens {
		if t == token {
			return i
		}
	}
	return -1
}

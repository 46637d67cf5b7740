package classname

import "strings"

// Token builds the utility class for prefix and value.
//
// A leading "-" on value moves in front of the prefix, so ("mt", "-2") yields
// "-mt-2" rather than "mt--2". An empty value yields an empty token, and an
// empty prefix yields the bare value for prefix-less families like "uppercase".
func Token(prefix, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if prefix == "" {
		return value
	}

	sign := ""
	if strings.HasPrefix(value, "-") {
		sign = "-"
		value = value[1:]
		if value == "" {
			return ""
		}
	}
	return sign + prefix + "-" + value
}

// Value is the inverse of Token. It reports the value carried by token for the
// given prefix, restoring a negative sign as a leading "-".
func Value(token, prefix string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" || prefix == "" {
		return "", false
	}

	sign := ""
	if strings.HasPrefix(token, "-") {
		sign = "-"
		token = token[1:]
	}

	rest, ok := strings.CutPrefix(token, prefix+"-")
	if !ok || rest == "" {
		return "", false
	}
	return sign + rest, true
}

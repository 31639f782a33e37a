package simulator

import "net/url"

// channel reads a colour channel the way the firmware does: a missing
// parameter takes def, a present one is parsed leniently and clamped to a
// byte.
func channel(q url.Values, key string, def int) int {
	if !q.Has(key) {
		return def
	}
	return clamp(leadingInt(q.Get(key)), 0, 255)
}

// leadingInt parses an optional sign and the digits that follow it, ignoring
// the rest. No digits yields 0.
func leadingInt(s string) int {
	i, neg := 0, false
	for i < len(s) && s[i] == ' ' {
		i++
	}
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > 1<<20 {
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

package utils

// legacyKeyMaxSum is the upper bound on the ASCII sum of a legacy key.
const legacyKeyMaxSum = 1000

// LegacyKeyPlausible reports whether token passes the old structural key
// check: alphanumeric only, with the sum of its character codes at most
// 1000. It proves nothing about who issued the token.
//
// Deprecated: accepts tokens that were never issued. Only consulted when
// LEGACY_TOKEN_FALLBACK is enabled.
func LegacyKeyPlausible(token string) bool {
	if token == "" {
		return false
	}

	sum := 0
	for i := 0; i < len(token); i++ {
		c := token[i]
		isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !isAlnum {
			return false
		}
		sum += int(c)
	}
	return sum <= legacyKeyMaxSum
}

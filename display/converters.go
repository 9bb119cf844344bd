package display

import "encoding/hex"

const ellipsisCharacter = "\u2026"

// ConvertBytes generates a short-hand of provided bytes slice showing only the first 3 and the last 3 bytes as hex.
// In total, the resulting string is maximum 13 characters long
func ConvertBytes(buff []byte) string {
	if len(buff) == 0 {
		return ""
	}
	if len(buff) < 6 {
		return hex.EncodeToString(buff)
	}

	prefix := hex.EncodeToString(buff[:3])
	suffix := hex.EncodeToString(buff[len(buff)-3:])
	return prefix + ellipsisCharacter + suffix
}

package logger

import (
	"log/slog"
	"strings"
)

// Attribute key patterns whose string values are masked.
var sensitiveKeyPatterns = []string{
	"key",
	"plaintext",
	"secret",
}

// redactedValue replaces values too short to mask partially.
const redactedValue = "***REDACTED***"

// redactSensitive masks string attributes whose key suggests a recovered
// key or plaintext. Groups are walked recursively.
func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		if v := a.Value.String(); v != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, MaskValue(v))
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}
	return a
}

// MaskValue keeps the first and last character of value and hides the
// rest. Values of three characters or fewer are fully redacted.
func MaskValue(value string) string {
	r := []rune(value)
	if len(r) <= 3 {
		return redactedValue
	}
	return string(r[0]) + "..." + string(r[len(r)-1])
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}

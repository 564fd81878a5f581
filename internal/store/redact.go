// redact.go strips personal data from audit snapshots before storage.

package store

import "strings"

// Redacted replaces sensitive values in stored audit snapshots.
const Redacted = "[REDACTED]"

// sensitiveKeys are field names whose values never reach the audit log.
var sensitiveKeys = map[string]struct{}{
	"password":        {},
	"hashed_password": {},
	"email":           {},
	"nif":             {},
	"receptor_nif":    {},
	"emisor_nif":      {},
	"username":        {},
	"phone":           {},
}

// RedactPII returns a copy of data with sensitive fields replaced by the
// Redacted marker. Nested maps and slices are traversed; the input is not
// modified.
func RedactPII(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out, _ := redactValue(data).(map[string]any)
	return out
}

func redactValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			if _, sensitive := sensitiveKeys[strings.ToLower(k)]; sensitive {
				out[k] = Redacted
			} else {
				out[k] = redactValue(inner)
			}
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = redactValue(inner)
		}
		return out
	default:
		return v
	}
}

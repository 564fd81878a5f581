package store_test

import (
	"testing"

	"github.com/fixhub-es/tradexdb/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestRedactPII(t *testing.T) {
	in := map[string]any{
		"username": "u@fixhub.es",
		"role":     "Owner",
		"Password": "secret",
		"nested": map[string]any{
			"email": "u@fixhub.es",
			"count": 3,
		},
		"items": []any{
			map[string]any{"phone": "+34600111222", "note": "keep"},
		},
	}

	out := store.RedactPII(in)

	assert.Equal(t, store.Redacted, out["username"])
	assert.Equal(t, "Owner", out["role"])
	// Key matching is case-insensitive.
	assert.Equal(t, store.Redacted, out["Password"])

	nested := out["nested"].(map[string]any)
	assert.Equal(t, store.Redacted, nested["email"])
	assert.Equal(t, 3, nested["count"])

	item := out["items"].([]any)[0].(map[string]any)
	assert.Equal(t, store.Redacted, item["phone"])
	assert.Equal(t, "keep", item["note"])

	// Input is not modified.
	assert.Equal(t, "u@fixhub.es", in["username"])
}

func TestRedactPII_Nil(t *testing.T) {
	assert.Nil(t, store.RedactPII(nil))
}

//go:build unit || e2e

package testutil

// Field mutates one key of a DtoMap. A nil value removes the key, which is
// how validation tests drop required fields.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

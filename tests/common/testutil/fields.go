//go:build unit || e2e

package testutil

// Field sets key to value, or removes key when value is nil.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// Nested applies mutations to the object stored under key.
func Nested(key string, muts ...func(map[string]any)) func(m map[string]any) {
	return func(m map[string]any) {
		inner, ok := m[key].(map[string]any)
		if !ok {
			return
		}
		for _, f := range muts {
			f(inner)
		}
	}
}

// FirstItem applies mutations to the first element of the array stored under key.
func FirstItem(key string, muts ...func(map[string]any)) func(m map[string]any) {
	return func(m map[string]any) {
		items, ok := m[key].([]any)
		if !ok || len(items) == 0 {
			return
		}
		inner, ok := items[0].(map[string]any)
		if !ok {
			return
		}
		for _, f := range muts {
			f(inner)
		}
	}
}

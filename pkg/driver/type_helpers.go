package driver

// Safe conversion helpers for values coming back from the graph store.
// Records arrive as map[string]any with driver-dependent numeric and list
// representations; these helpers normalize them without panicking on
// unexpected shapes.

// AsString converts a record value to string.
// Returns the string and true if successful, empty string and false otherwise.
func AsString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// AsFloat64 converts a record value to float64. Integer values are widened;
// anything else reports false.
func AsFloat64(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int64:
		return float64(value), true
	case int:
		return float64(value), true
	default:
		return 0, false
	}
}

// AsStringList converts a record value to a list of strings. List elements
// that are nil or not strings are skipped rather than failing the whole
// record; an Advice node with one malformed neighbor still renders.
func AsStringList(v any) ([]string, bool) {
	if v == nil {
		return nil, false
	}

	switch values := v.(type) {
	case []string:
		out := make([]string, len(values))
		copy(out, values)
		return out, true
	case []any:
		out := make([]string, 0, len(values))
		for _, item := range values {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

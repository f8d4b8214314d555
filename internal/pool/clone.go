package pool

// cloneValue returns a deep, independent copy of a decoded JSON value.
// Mutating the clone never reaches the original, so portal defaults stay
// pristine across resolution passes. Scalars (string, float64, bool, nil)
// are immutable and returned as-is.
func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		clone := make(map[string]any, len(value))
		for key, item := range value {
			clone[key] = cloneValue(item)
		}
		return clone
	case []any:
		clone := make([]any, len(value))
		for i, item := range value {
			clone[i] = cloneValue(item)
		}
		return clone
	default:
		return value
	}
}

package service

// FilterCustom returns the entries of submitted whose key is in allowed,
// values passed through unchanged. Unknown keys are dropped silently: this
// keeps undeclared fields out of storage, it is not a validation layer, and
// values are never checked against the declared field type. An empty
// allowlist yields an empty map regardless of input.
func FilterCustom(allowed []string, submitted map[string]any) map[string]any {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, key := range allowed {
		allowedSet[key] = struct{}{}
	}

	filtered := make(map[string]any)
	for key, value := range submitted {
		if _, ok := allowedSet[key]; ok {
			filtered[key] = value
		}
	}
	return filtered
}

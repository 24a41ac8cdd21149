package utils

// RemoveEmptyStrings filters empty entries out of a slice, preserving order.
func RemoveEmptyStrings(slice []string) []string {
	result := make([]string, 0, len(slice))

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

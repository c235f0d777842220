package k8s

import (
	"regexp"
	"strings"
)

// sanitizeName converts a string to a valid Kubernetes resource name (DNS-1123 subdomain)
// Must consist of lowercase alphanumeric characters, '-' or '.', and must start and end with an alphanumeric character
func sanitizeName(name string) string {
	// Convert to lowercase
	name = strings.ToLower(name)

	// Replace underscores and other invalid characters with hyphens
	reg := regexp.MustCompile(`[^a-z0-9.-]+`)
	name = reg.ReplaceAllString(name, "-")

	// Ensure it starts with an alphanumeric character
	name = strings.TrimLeft(name, "-.")

	// Ensure it ends with an alphanumeric character
	name = strings.TrimRight(name, "-.")

	// Kubernetes resource names have a max length of 253 characters
	if len(name) > 253 {
		name = name[:253]
		// Re-trim end in case we cut in the middle of invalid characters
		name = strings.TrimRight(name, "-.")
	}

	return name
}

// sanitizeLabel converts a string to a valid Kubernetes label value
// Must be an empty string or consist of alphanumeric characters, '-', '_' or '.', and must start and end with an alphanumeric character
func sanitizeLabel(label string) string {
	if label == "" {
		return label
	}

	// Replace invalid characters with hyphens
	reg := regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	label = reg.ReplaceAllString(label, "-")

	// Ensure it starts with an alphanumeric character
	label = strings.TrimLeft(label, "-._")

	// Ensure it ends with an alphanumeric character
	label = strings.TrimRight(label, "-._")

	// Kubernetes labels have a max length of 63 characters
	if len(label) > 63 {
		label = label[:63]
		// Re-trim end in case we cut in the middle of invalid characters
		label = strings.TrimRight(label, "-._")
	}

	return label
}

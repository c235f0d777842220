package orchestra

import "strings"

// RunnerType extracts the image's trailing path segment before any tag,
// e.g. "cicadatesting/cicada-2-rest-runner:latest" -> "cicada-2-rest-runner".
// Both backends derive their provisioned resource name from it.
func RunnerType(image string) string {
	segment := image
	if idx := strings.LastIndex(image, "/"); idx >= 0 {
		segment = image[idx+1:]
	}

	if idx := strings.Index(segment, ":"); idx >= 0 {
		segment = segment[:idx]
	}

	return segment
}

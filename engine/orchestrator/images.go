package orchestrator

// runnerImages maps a well-known runner name to its published image.
// A TestConfig may instead set Image directly for anything not in this
// table.
var runnerImages = map[string]string{
	"rest-runner":  "cicadatesting/cicada-2-rest-runner",
	"sql-runner":   "cicadatesting/cicada-2-sql-runner",
	"kafka-runner": "cicadatesting/cicada-2-kafka-runner",
	"s3-runner":    "cicadatesting/cicada-2-s3-runner",
	"grpc-runner":  "cicadatesting/cicada-2-grpc-runner",
}

// resolveImage returns the image to provision for config: its
// well-known runner name if set and recognized, otherwise its explicit
// image, otherwise "".
func resolveImage(runner, image string) string {
	if mapped, ok := runnerImages[runner]; ok {
		return mapped
	}

	return image
}

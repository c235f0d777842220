package orchestra

// Volume mounts a pre-existing storage location into a runner. Drivers
// never create or own the backing storage: a Docker Volume is a host
// bind-mount and a Kubernetes Volume references an already-existing
// PersistentVolumeClaim by name.
type Volume struct {
	Source      string
	Destination string
}

// RunnerSpec describes one runner to provision. RunID groups every
// runner belonging to the same test run so a single bulk teardown can
// find them all by label, independent of individual remove calls.
type RunnerSpec struct {
	Name  string
	Image string
	Env   map[string]string
	Volumes []Volume
	RunID string
}

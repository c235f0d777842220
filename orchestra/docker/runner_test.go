package docker_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jtarchie/conductor/orchestra"
	"github.com/jtarchie/conductor/orchestra/docker"
	gonanoid "github.com/matoous/go-nanoid/v2"
	. "github.com/onsi/gomega"
)

func TestDockerRunnerLifecycle(t *testing.T) {
	t.Parallel()

	if !docker.IsAvailable() {
		t.Skip("docker daemon not available")
	}

	assert := NewGomegaWithT(t)

	// healthcheck params kept tiny: nginx never answers the runner gRPC
	// contract, so CreateRunner is expected to fail fast once the
	// container comes up and the health gate exhausts its retries.
	driver, err := docker.NewDocker("test-"+gonanoid.Must(), slog.Default(), map[string]string{
		"healthcheckInitialWait": "0",
		"healthcheckMaxRetries":  "1",
	})
	assert.Expect(err).NotTo(HaveOccurred())

	defer func() { _ = driver.Close() }()

	runID := gonanoid.Must()

	_, err = driver.CreateRunner(context.Background(), orchestra.RunnerSpec{
		Name:  "unreachable",
		Image: "nginx:alpine",
		RunID: runID,
	})
	assert.Expect(err).To(HaveOccurred())
	assert.Expect(err.Error()).To(ContainSubstring("contact container"))
}

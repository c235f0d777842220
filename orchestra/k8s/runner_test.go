package k8s_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jtarchie/conductor/orchestra"
	"github.com/jtarchie/conductor/orchestra/k8s"
	gonanoid "github.com/matoous/go-nanoid/v2"
	. "github.com/onsi/gomega"
)

func TestK8sRunnerLifecycle(t *testing.T) {
	t.Parallel()

	if !k8s.IsAvailable() {
		t.Skip("kubernetes cluster not available")
	}

	assert := NewGomegaWithT(t)

	driverIface, err := k8s.NewK8s("test-"+gonanoid.Must(), slog.Default(), map[string]string{
		"healthcheckInitialWait": "0",
		"healthcheckMaxRetries":  "1",
	})
	assert.Expect(err).NotTo(HaveOccurred())

	driver, ok := driverIface.(orchestra.Driver)
	assert.Expect(ok).To(BeTrue())

	defer func() { _ = driver.Close() }()

	runID := gonanoid.Must()

	// nginx becomes Running but never answers the runner gRPC contract,
	// so CreateRunner is expected to reach the health gate and fail once
	// its bounded retries are exhausted.
	_, err = driver.CreateRunner(context.Background(), orchestra.RunnerSpec{
		Name:  "unreachable",
		Image: "nginx:alpine",
		RunID: runID,
	})
	assert.Expect(err).To(HaveOccurred())
	assert.Expect(err.Error()).To(ContainSubstring("contact pod"))
}

package timeout_test

import (
	"context"
	"testing"
	"time"

	"github.com/jtarchie/conductor/engine/model"
	"github.com/jtarchie/conductor/engine/timeout"
	. "github.com/onsi/gomega"
)

type neverPassSender struct{}

func (neverPassSender) SendAction(_ context.Context, _ string, _ model.Action) model.RawValue {
	return model.RawValue("{}")
}

func (neverPassSender) SendAssert(_ context.Context, _ string, asrt model.Assert) model.AssertStatus {
	return model.AssertStatus{Passed: false, Description: asrt.Name}
}

func TestRunInlineWhenDurationUnset(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	config := model.TestConfig{Name: "t1", Actions: []model.Action{{Name: "a1", Type: "POST"}}}

	state, err := timeout.Run(context.Background(), neverPassSender{}, config, model.State{}, []string{"h1:50051"}, nil)
	assert.Expect(err).NotTo(HaveOccurred())
	assert.Expect(state["t1"].Summary.CompletedCycles).To(Equal(1))
}

func TestRunStopsAtDeadlineButReturnsActualResult(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	zero := 0.0
	duration := 1
	config := model.TestConfig{
		Name:                 "t1",
		Asserts:              []model.Assert{{Name: "s1", Type: "equals"}},
		SecondsBetweenCycles: &zero,
	}

	started := time.Now()

	state, err := timeout.Run(context.Background(), neverPassSender{}, config, model.State{}, []string{"h1:50051"}, &duration)
	elapsed := time.Since(started)

	assert.Expect(err).NotTo(HaveOccurred())
	assert.Expect(elapsed).To(BeNumerically("<", 5*time.Second))
	assert.Expect(state["t1"].Summary.RemainingAsserts).To(ContainElement("s1"))
}

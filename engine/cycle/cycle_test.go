package cycle_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/jtarchie/conductor/engine/cycle"
	"github.com/jtarchie/conductor/engine/model"
	. "github.com/onsi/gomega"
)

// passAfterSender fails every assert until it has been called n times,
// letting tests drive a bounded number of cycles deterministically.
type passAfterSender struct {
	passAfter int32
	calls     int32
}

func (s *passAfterSender) SendAction(_ context.Context, _ string, _ model.Action) model.RawValue {
	return model.RawValue("{}")
}

func (s *passAfterSender) SendAssert(_ context.Context, _ string, asrt model.Assert) model.AssertStatus {
	n := atomic.AddInt32(&s.calls, 1)

	return model.AssertStatus{Passed: n >= s.passAfter, Description: asrt.Name}
}

func TestDefaultCycles(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	assert.Expect(cycle.DefaultCycles(nil, []model.Assert{{Name: "a"}})).To(Equal(cycle.Unlimited))
	assert.Expect(cycle.DefaultCycles([]model.Action{{Name: "a1", Asserts: []model.Assert{{Name: "ia"}}}}, nil)).To(Equal(cycle.Unlimited))
	assert.Expect(cycle.DefaultCycles([]model.Action{{Name: "a1"}}, nil)).To(Equal(1))
	assert.Expect(cycle.DefaultCycles(nil, nil)).To(Equal(0))
}

func TestRunRequiresHostnames(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	_, err := cycle.Run(context.Background(), &passAfterSender{}, model.TestConfig{Name: "t1"}, model.State{}, nil, nil)
	assert.Expect(err).To(MatchError(cycle.ErrNoHostnames))
}

func TestRunStopsOnceAssertsSatisfied(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	zero := 0.0
	config := model.TestConfig{
		Name:                 "t1",
		Asserts:              []model.Assert{{Name: "s1", Type: "equals"}},
		SecondsBetweenCycles: &zero,
	}

	sender := &passAfterSender{passAfter: 3}

	state, err := cycle.Run(context.Background(), sender, config, model.State{}, []string{"h1:50051"}, nil)
	assert.Expect(err).NotTo(HaveOccurred())
	assert.Expect(state["t1"].Summary.CompletedCycles).To(Equal(3))
	assert.Expect(state["t1"].Summary.RemainingAsserts).To(BeEmpty())
	assert.Expect(state["t1"].Asserts["s1"].Passed).To(BeTrue())
}

func TestRunHonorsCancellation(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	zero := 0.0
	config := model.TestConfig{
		Name:                 "t1",
		Asserts:              []model.Assert{{Name: "s1", Type: "equals"}},
		SecondsBetweenCycles: &zero,
	}

	calls := 0
	keepGoing := func() bool {
		calls++

		return calls <= 2
	}

	sender := &passAfterSender{passAfter: 1000}

	state, err := cycle.Run(context.Background(), sender, config, model.State{}, []string{"h1:50051"}, keepGoing)
	assert.Expect(err).NotTo(HaveOccurred())
	assert.Expect(state["t1"].Summary.CompletedCycles).To(Equal(2))
	assert.Expect(state["t1"].Summary.RemainingAsserts).To(ContainElement("s1"))
}

func TestRunSingleCycleForActionsOnly(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	config := model.TestConfig{
		Name:    "t1",
		Actions: []model.Action{{Name: "a1", Type: "POST"}},
	}

	state, err := cycle.Run(context.Background(), &passAfterSender{}, config, model.State{}, []string{"h1:50051"}, nil)
	assert.Expect(err).NotTo(HaveOccurred())
	assert.Expect(state["t1"].Summary.CompletedCycles).To(Equal(1))
	assert.Expect(state["t1"].Actions).To(HaveKey("a1"))
}

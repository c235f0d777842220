package dispatch_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jtarchie/conductor/engine/dispatch"
	"github.com/jtarchie/conductor/engine/model"
	. "github.com/onsi/gomega"
)

// recordingSender records call order and returns canned per-type
// responses, letting tests assert exact RPC sequencing without a gRPC
// server.
type recordingSender struct {
	mu    sync.Mutex
	calls []string
	seq   int64
}

func (s *recordingSender) SendAction(_ context.Context, hostname string, action model.Action) model.RawValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := atomic.AddInt64(&s.seq, 1)
	s.calls = append(s.calls, fmt.Sprintf("action:%s@%s", action.Name, hostname))

	return model.RawValue(fmt.Sprintf(`{"n":%d}`, n))
}

func (s *recordingSender) SendAssert(_ context.Context, hostname string, asrt model.Assert) model.AssertStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, fmt.Sprintf("assert:%s@%s", asrt.Name, hostname))

	return model.AssertStatus{Passed: true, Description: asrt.Name}
}

func TestRunActionsSequencesInnerAsserts(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	sender := &recordingSender{}

	actions := []model.Action{
		{Name: "a1", Type: "POST", Asserts: []model.Assert{{Name: "ia1", Type: "equals"}}},
		{Name: "a2", Type: "GET"},
	}

	data := dispatch.RunActions(context.Background(), sender, actions, "host1:50051", 0)

	assert.Expect(sender.calls).To(Equal([]string{
		"action:a1@host1:50051",
		"assert:ia1@host1:50051",
		"action:a2@host1:50051",
	}))
	assert.Expect(data).To(HaveKey("a1"))
	assert.Expect(data["a1"].Asserts["ia1"].Passed).To(BeTrue())
	assert.Expect(data).To(HaveKey("a2"))
}

func TestCombineActionDataOutputsLastWriteWins(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	a := model.ActionsData{"a1": {Outputs: model.RawValue(`{"v":1}`)}}
	b := model.ActionsData{"a1": {Outputs: model.RawValue(`{"v":2}`)}}

	combined := dispatch.CombineActionData(a, b)
	assert.Expect(string(combined["a1"].Outputs)).To(Equal(`{"v":2}`))
}

func TestCombineAssertStatusesIsSticky(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	a := model.AssertStatuses{"s1": {Passed: true, Description: "first pass"}}
	b := model.AssertStatuses{"s1": {Passed: false, Description: "later fail"}}

	combined := dispatch.CombineAssertStatuses(a, b)
	assert.Expect(combined["s1"].Passed).To(BeTrue())
	assert.Expect(combined["s1"].Description).To(Equal("first pass"))

	// the reverse direction still prefers whichever side is satisfied
	combinedReverse := dispatch.CombineAssertStatuses(b, a)
	assert.Expect(combinedReverse["s1"].Passed).To(BeTrue())
}

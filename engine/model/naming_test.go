package model_test

import (
	"testing"

	"github.com/jtarchie/conductor/engine/model"
	. "github.com/onsi/gomega"
)

func TestVerifyActionNames(t *testing.T) {
	t.Parallel()

	t.Run("assigns defaults and numbers collisions", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		actions := []model.Action{
			{Type: "POST"},
			{Type: "POST"},
			{Type: "GET", Name: "fetch"},
		}

		err := model.VerifyActionNames(actions)
		assert.Expect(err).NotTo(HaveOccurred())
		assert.Expect(actions[0].Name).To(Equal("POST"))
		assert.Expect(actions[1].Name).To(Equal("POST1"))
		assert.Expect(actions[2].Name).To(Equal("fetch"))
	})

	t.Run("rejects a missing type", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		err := model.VerifyActionNames([]model.Action{{Name: "a1"}})
		assert.Expect(err).To(MatchError(model.ErrMissingType))
	})

	t.Run("rejects an explicit duplicate name", func(t *testing.T) {
		t.Parallel()

		assert := NewGomegaWithT(t)

		actions := []model.Action{
			{Type: "POST", Name: "a1"},
			{Type: "GET", Name: "a1"},
		}

		err := model.VerifyActionNames(actions)
		assert.Expect(err).To(MatchError(model.ErrDuplicateName))
	})
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	asserts := []model.Assert{{Name: "a1"}, {Name: "a2"}}
	statuses := model.AssertStatuses{
		"a1": {Passed: true},
		"a2": {Passed: false},
	}

	remaining := model.Remaining(asserts, statuses)
	assert.Expect(remaining).To(HaveLen(1))
	assert.Expect(remaining[0].Name).To(Equal("a2"))
}

func TestHasAnyAsserts(t *testing.T) {
	t.Parallel()

	assert := NewGomegaWithT(t)

	assert.Expect(model.HasAnyAsserts(nil, nil)).To(BeFalse())
	assert.Expect(model.HasAnyAsserts(nil, []model.Assert{{Name: "a"}})).To(BeTrue())
	assert.Expect(model.HasAnyAsserts([]model.Action{{Asserts: []model.Assert{{Name: "a"}}}}, nil)).To(BeTrue())
}

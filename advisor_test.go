package usl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// advisorModel peaks at exactly N=35: √((1−0.02)/0.0008) = √1225.
func advisorModel() Model {
	return NewModel(0.02, 0.0008, 1000)
}

func TestAdviseGrow(t *testing.T) {
	rec := Advise(advisorModel(), 4)

	assert.Equal(t, AdviceGrow, rec.Advice)
	assert.False(t, rec.Retrograde)
	assert.Less(t, rec.Utilization, holdUtilization)
	assert.InDelta(t, 35, rec.PeakConcurrency, 1)
	assert.NotEmpty(t, rec.Reason)
}

func TestAdviseHold(t *testing.T) {
	// N=30 already delivers ~99% of peak throughput
	rec := Advise(advisorModel(), 30)

	assert.Equal(t, AdviceHold, rec.Advice)
	assert.False(t, rec.Retrograde)
	assert.GreaterOrEqual(t, rec.Utilization, holdUtilization)
}

func TestAdviseShrink(t *testing.T) {
	rec := Advise(advisorModel(), 40)

	assert.Equal(t, AdviceShrink, rec.Advice)
	assert.True(t, rec.Retrograde)
}

func TestAdviseLimitless(t *testing.T) {
	rec := Advise(NewModel(0.1, 0, 500), 64)

	assert.Equal(t, AdviceGrow, rec.Advice)
	assert.False(t, rec.Retrograde)
	assert.Zero(t, rec.Utilization)
	assert.Greater(t, rec.Efficiency, 0.0)
}

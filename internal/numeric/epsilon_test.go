package numeric

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFloatEquals(t *testing.T) {
	a := 2.759493670886076
	b := 2.75949367088608
	o := FloatEquals(a, b, 1e-14)
	assert.True(t, o)
}

func TestFloatGreaterThan(t *testing.T) {
	assert.True(t, FloatGreaterThan(1.0, 0.9, 1e-9))
	assert.False(t, FloatGreaterThan(1.0, 1.0+1e-12, 1e-9))
}

func TestFloatLessThan(t *testing.T) {
	assert.True(t, FloatLessThan(0.9, 1.0, 1e-9))
	assert.False(t, FloatLessThan(1.0, 1.0+1e-12, 1e-9))
}

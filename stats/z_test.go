package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZVal(t *testing.T) {
	assert.InDelta(t, 1.96, ZVal(95), 0.001)
	assert.InDelta(t, 1.645, ZVal(90), 0.001)
	assert.InDelta(t, 2.576, ZVal(99), 0.001)
}

package geoutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/greenwave-oss/utils/geoutil"
)

func TestDistanceCoincidentPoints(t *testing.T) {
	assert.Zero(t, geoutil.DistanceM(0, 0, 0, 0))
	assert.Zero(t, geoutil.DistanceM(-45.87, -67.5, -45.87, -67.5))
}

func TestDistanceSymmetry(t *testing.T) {
	d1 := geoutil.DistanceM(-45.8700, -67.5000, -45.8690, -67.4950)
	d2 := geoutil.DistanceM(-45.8690, -67.4950, -45.8700, -67.5000)
	assert.InDelta(t, d1, d2, 1e-9)
	assert.Greater(t, d1, 0.0)
}

func TestDistanceOneDegreeLatitude(t *testing.T) {
	// 沿经线1度对应的弧长为 R*pi/180
	d := geoutil.DistanceM(0, 0, 1, 0)
	assert.InDelta(t, 111194.9, d, 1.0)
}

func TestDistanceMonotonicInSeparation(t *testing.T) {
	d1 := geoutil.DistanceM(0, 0, 0, 0.001)
	d2 := geoutil.DistanceM(0, 0, 0, 0.002)
	d3 := geoutil.DistanceM(0, 0, 0, 0.004)
	assert.Less(t, d1, d2)
	assert.Less(t, d2, d3)
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoise2DDeterministic(t *testing.T) {
	a := NewNoise(12345)
	b := NewNoise(12345)

	for i := 0; i < 50; i++ {
		x := float64(i) * 0.37
		y := float64(i) * -0.21
		assert.Equal(t, a.Noise2D(x, y), b.Noise2D(x, y), "одинаковый сид должен давать одинаковый шум")
	}
}

func TestNoise2DRange(t *testing.T) {
	n := NewNoise(7)
	for x := -20; x < 20; x++ {
		for y := -20; y < 20; y++ {
			v := n.Noise2D(float64(x)*0.13, float64(y)*0.13)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
	assert.Equal(t, int64(7), n.Seed())
}

package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-keyreduce/internal/vec"
)

func TestRange(t *testing.T) {
	values := []vec.Vec{vec.Of(1, -2), vec.Of(3, 5), vec.Of(-1, 0)}
	lo, hi := Range(values)
	assert.Equal(t, vec.Of(-1, -2), lo)
	assert.Equal(t, vec.Of(3, 5), hi)
}

func TestTolerance(t *testing.T) {
	tests := []struct {
		name   string
		values []vec.Vec
		r      float32
		want   vec.Vec
	}{
		{
			name:   "relative to range",
			values: []vec.Vec{vec.Of(0), vec.Of(4), vec.Of(2)},
			r:      0.05,
			want:   vec.Of(0.2),
		},
		{
			name:   "flat dimension collapses to floor",
			values: []vec.Vec{vec.Of(7, 0), vec.Of(7, 10)},
			r:      0.1,
			want:   vec.Of(DefaultToleranceFloor, 1),
		},
		{
			name:   "single value",
			values: []vec.Vec{vec.Of(3, 3, 3)},
			r:      1,
			want:   vec.Splat(3, DefaultToleranceFloor),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tolerance(tt.values, tt.r, DefaultToleranceFloor)
			assert.True(t, got.ApproxEqual(tt.want, 1e-7), "got %v, want %v", got, tt.want)
		})
	}
}

func TestSpan(t *testing.T) {
	assert.Nil(t, Span(0, 1, 0))
	assert.Equal(t, []float32{2}, Span(2, 5, 1))
	assert.Equal(t, []float32{0, 0.25, 0.5, 0.75, 1}, Span(0, 1, 5))
}

func TestColumn(t *testing.T) {
	col := Column([]vec.Vec{vec.Of(1, 2), vec.Of(3, 4)}, 1)
	assert.Equal(t, []float64{2, 4}, col)
}

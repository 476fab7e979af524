package shortest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_Accessors(t *testing.T) {
	g := square()

	assert.True(t, g.Has("A"))
	assert.False(t, g.Has("Z"))
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Nodes())
	assert.Equal(t, 10, g.EdgeCount())

	w, ok := g.Weight("B", "C")
	assert.True(t, ok)
	assert.Equal(t, int64(1), w)

	_, ok = g.Weight("A", "D")
	assert.False(t, ok)
}

func TestGraph_PathCost(t *testing.T) {
	g := square()

	cost, ok := g.PathCost([]string{"A", "B", "C", "D"})
	require.True(t, ok)
	assert.Equal(t, int64(6), cost)

	cost, ok = g.PathCost([]string{"A"})
	require.True(t, ok)
	assert.Zero(t, cost)

	_, ok = g.PathCost([]string{"A", "D"})
	assert.False(t, ok)
}

func TestGraph_Validate(t *testing.T) {
	require.NoError(t, square().Validate())
	require.NoError(t, Graph{"A": nil}.Validate())

	err := Graph{"A": {"B": 1}}.Validate()
	require.ErrorIs(t, err, ErrDanglingEdge)
	assert.Contains(t, err.Error(), "A -> B")
}

func TestAddSat(t *testing.T) {
	tests := []struct {
		name string
		d, w int64
		want int64
	}{
		{"finite", 3, 4, 7},
		{"negative", 3, -5, -2},
		{"infinite absorbs", Infinity, -100, Infinity},
		{"clamps high", math.MaxInt64 - 1, 10, Infinity - 1},
		{"clamps low", math.MinInt64 + 1, -10, math.MinInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, addSat(tt.d, tt.w))
		})
	}
}

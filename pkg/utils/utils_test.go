package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentile(t *testing.T) {
	values := []float64{7, 1, 5, 3, 9}

	tests := []struct {
		name     string
		p        float64
		expected float64
	}{
		{name: "mínimo", p: 0, expected: 1},
		{name: "primeiro quartil", p: 25, expected: 3},
		{name: "mediana", p: 50, expected: 5},
		{name: "terceiro quartil", p: 75, expected: 7},
		{name: "máximo", p: 100, expected: 9},
		{name: "interpolado", p: 10, expected: 1.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Percentile(values, tt.p), 1e-9)
		})
	}

	// A lista original não é reordenada
	assert.Equal(t, []float64{7, 1, 5, 3, 9}, values)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.Equal(t, 3.0, Median([]float64{3}))
	assert.Zero(t, Median(nil))
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 2.5, SafeDivide(5, 2))
	assert.Zero(t, SafeDivide(5, 0))
	assert.Zero(t, SafeDivide(math.Inf(1), 2))
	assert.Zero(t, SafeDivide(math.NaN(), 2))
}

func TestRelativelyEqual(t *testing.T) {
	assert.True(t, RelativelyEqual(0, 0, 1e-6))
	assert.True(t, RelativelyEqual(1_000_000, 1_000_000.5, 1e-6))
	assert.False(t, RelativelyEqual(1, 1.01, 1e-6))
	assert.False(t, RelativelyEqual(0, 1e-9, 1e-6))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 10)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestPrettyJson(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{
			name:     "mapa com um campo",
			in:       map[string]float64{"mrr": 11925},
			expected: "{\n  \"mrr\": 11925\n}",
		},
		{
			name: "struct aninhada",
			in: struct {
				ID   string         `json:"id"`
				Data map[string]int `json:"data"`
			}{ID: "rpt", Data: map[string]int{"a": 1}},
			expected: "{\n  \"id\": \"rpt\",\n  \"data\": {\n    \"a\": 1\n  }\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out string
			assert.NotPanics(t, func() { out = PrettyJson(tt.in) })
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestPrettyJson_ValorNaoSerializavel(t *testing.T) {
	var out string
	assert.NotPanics(t, func() { out = PrettyJson(make(chan int)) })
	assert.Empty(t, out)
}

package utils_test

import (
	"encoding/json"
	"testing"

	"roundest/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 25, 25},
		{"Float", 25.0, 25},
		{"JSONNumber", json.Number("150"), 150},
		{"String", " 151 ", 151},
		{"FloatString", "7.0", 7},
		{"Bytes", []byte("3"), 3},
		{"Garbage", "pika", 0},
		{"Nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", utils.ToString(nil))
	assert.Equal(t, "mew", utils.ToString("mew"))
	assert.Equal(t, "mew", utils.ToString([]byte("mew")))
	assert.Equal(t, "12", utils.ToString(12))
}

func TestFirstPresent(t *testing.T) {
	m := map[string]any{"dexNumber": 4, "id": nil}

	v, ok := utils.FirstPresent(m, "dexId", "id", "dexNumber")
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = utils.FirstPresent(m, "missing")
	assert.False(t, ok)
}

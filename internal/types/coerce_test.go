package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{12.5, 12.5, true},
		{json.Number("2000"), 2000, true},
		{" 7 ", 7, true},
		{"1e2", 100, true},
		{"", 0, false},
		{"abc", 0, false},
		{nil, 0, false},
		{true, 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := ToFloat(tt.in)
		assert.Equal(t, tt.ok, ok, "input %#v", tt.in)
		assert.Equal(t, tt.want, got, "input %#v", tt.in)
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
		ok   bool
	}{
		{json.Number("4"), 4, true},
		{json.Number("4.7"), 4, true},
		{json.Number("-2.5"), -2, true},
		{3.9, 3, true},
		{"4", 4, true},
		{" 5 ", 5, true},
		{"4.0", 0, false},
		{"four", 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := ToInt(tt.in)
		assert.Equal(t, tt.ok, ok, "input %#v", tt.in)
		assert.Equal(t, tt.want, got, "input %#v", tt.in)
	}
}

func TestToText(t *testing.T) {
	assert.Equal(t, "", ToText(nil))
	assert.Equal(t, "Dairy", ToText("Dairy"))
	assert.Equal(t, "12.5", ToText(12.5))
	assert.Equal(t, "3", ToText(json.Number("3")))
	assert.Equal(t, "true", ToText(true))
}

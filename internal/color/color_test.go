package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSolidHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		hex      string
		alpha    int
	}{
		{name: "short hex expands", input: "#abc", hex: "#aabbcc", alpha: 100},
		{name: "full hex", input: "#1A2B3C", hex: "#1a2b3c", alpha: 100},
		{name: "eight digit tracks alpha", input: "#ff000080", hex: "#ff0000", alpha: 50},
		{name: "eight digit opaque", input: "#00ff00ff", hex: "#00ff00", alpha: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Parse(tt.input)
			require.Equal(t, ModeSolid, v.Mode)
			assert.Equal(t, tt.hex, v.Hex)
			assert.Equal(t, tt.alpha, v.Alpha)
		})
	}
}

func TestParseSolidFunctional(t *testing.T) {
	t.Parallel()

	v := Parse("rgb(255, 128, 0)")
	require.Equal(t, ModeSolid, v.Mode)
	assert.Equal(t, "#ff8000", v.Hex)
	assert.Equal(t, 100, v.Alpha, "alpha defaults to fully opaque")

	v = Parse("rgba(0, 0, 0, 0.5)")
	require.Equal(t, ModeSolid, v.Mode)
	assert.Equal(t, "#000000", v.Hex)
	assert.Equal(t, 50, v.Alpha)
}

func TestParseGradient(t *testing.T) {
	t.Parallel()

	v := Parse("linear-gradient(45deg, rgba(0,0,0,0.5), #ffffff)")
	require.Equal(t, ModeGradient, v.Mode)
	assert.Equal(t, 45, v.Angle)
	assert.Equal(t, "rgba(0,0,0,0.5)", v.Start)
	assert.Equal(t, "#ffffff", v.End)
}

func TestParseGradientDefaultAngle(t *testing.T) {
	t.Parallel()

	v := Parse("linear-gradient(#000000, #ffffff)")
	require.Equal(t, ModeGradient, v.Mode)
	assert.Equal(t, 90, v.Angle)
	assert.Equal(t, "#000000", v.Start)
	assert.Equal(t, "#ffffff", v.End)
}

func TestGradientRoundTrip(t *testing.T) {
	t.Parallel()

	input := "linear-gradient(45deg, rgba(0,0,0,0.5), #ffffff)"
	v := Parse(input)
	out := v.String()
	assert.Equal(t, input, out)

	// A second parse of the serialized form is stable.
	assert.Equal(t, v, Parse(out))
}

func TestUnparseableInputPassesThrough(t *testing.T) {
	t.Parallel()

	tests := []string{
		"tomato",
		"url(#pattern)",
		"linear-gradient(45deg, #000)",
		"rgb(300, 0, 0)",
		"#12",
		"radial-gradient(#000, #fff)",
		"",
	}

	for _, input := range tests {
		v := Parse(input)
		assert.Equal(t, ModeCustom, v.Mode, input)
		assert.Equal(t, input, v.String(), "custom values round-trip verbatim")
	}
}

func TestSerializeSolid(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#aabbcc", Value{Mode: ModeSolid, Hex: "#aabbcc", Alpha: 100}.String())
	assert.Equal(t, "rgba(255, 0, 0, 0.5)", Value{Mode: ModeSolid, Hex: "#ff0000", Alpha: 50}.String())
	assert.Equal(t, "rgba(0, 0, 0, 0.25)", Value{Mode: ModeSolid, Hex: "#000000", Alpha: 25}.String())
	assert.Equal(t, "rgba(0, 0, 0, 0.1)", Value{Mode: ModeSolid, Hex: "#000000", Alpha: 10}.String(),
		"trailing zeros are trimmed")
	assert.Equal(t, "rgba(0, 0, 0, 0)", Value{Mode: ModeSolid, Hex: "#000000", Alpha: 0}.String())
}

func TestSplitTopLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "plain args",
			input:    "90deg, #000, #fff",
			expected: []string{"90deg", "#000", "#fff"},
		},
		{
			name:     "nested parens survive",
			input:    "45deg, rgba(0,0,0,0.5), rgb(1, 2, 3)",
			expected: []string{"45deg", "rgba(0,0,0,0.5)", "rgb(1, 2, 3)"},
		},
		{
			name:     "deeply nested",
			input:    "calc(min(1px, 2px), 3px), #fff",
			expected: []string{"calc(min(1px, 2px), 3px)", "#fff"},
		},
		{
			name:     "single arg",
			input:    "#fff",
			expected: []string{"#fff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitTopLevel(tt.input))
		})
	}
}

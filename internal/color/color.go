// Package color parses and serializes the style values a builder document
// carries: solid hex/rgb colors and two-stop linear gradients. Anything the
// codec does not recognize round-trips verbatim so a half-typed value in the
// editing surface is never destroyed.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode distinguishes the structured forms a style value can take.
type Mode string

const (
	// ModeSolid is a single color: hex or rgb()/rgba() notation.
	ModeSolid Mode = "solid"
	// ModeGradient is a two-stop linear gradient.
	ModeGradient Mode = "gradient"
	// ModeCustom is an unrecognized value preserved as-is.
	ModeCustom Mode = "custom"
)

// Value is the editable structured form of a style color value.
type Value struct {
	Mode Mode

	// Solid fields. Hex is always the 6-digit #rrggbb form; Alpha is an
	// integer percentage 0-100.
	Hex   string
	Alpha int

	// Gradient fields. Start and End keep their original spelling so a
	// gradient stop written as rgba() stays rgba() on the way back out.
	Angle int
	Start string
	End   string

	// Raw holds the original input for ModeCustom values.
	Raw string
}

// Parse turns a style string into its structured form. It never fails:
// unparseable input comes back as a ModeCustom value wrapping the original.
func Parse(input string) Value {
	trimmed := strings.TrimSpace(input)

	if v, ok := parseGradient(trimmed); ok {
		return v
	}
	if v, ok := parseSolid(trimmed); ok {
		return v
	}
	return Value{Mode: ModeCustom, Raw: input}
}

// String serializes the structured form back into a style string.
// Solid values with full alpha emit bare hex; translucent ones emit rgba()
// with the alpha trimmed to at most two decimal places.
func (v Value) String() string {
	switch v.Mode {
	case ModeSolid:
		return formatSolid(v.Hex, v.Alpha)
	case ModeGradient:
		return fmt.Sprintf("linear-gradient(%ddeg, %s, %s)", v.Angle, v.Start, v.End)
	default:
		return v.Raw
	}
}

func parseGradient(s string) (Value, bool) {
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "linear-gradient(") || !strings.HasSuffix(s, ")") {
		return Value{}, false
	}
	inner := s[len("linear-gradient(") : len(s)-1]
	args := SplitTopLevel(inner)

	angle := 90
	if len(args) > 0 {
		if deg, ok := parseAngle(args[0]); ok {
			angle = deg
			args = args[1:]
		}
	}
	if len(args) != 2 {
		return Value{}, false
	}
	return Value{
		Mode:  ModeGradient,
		Angle: angle,
		Start: strings.TrimSpace(args[0]),
		End:   strings.TrimSpace(args[1]),
	}, true
}

func parseAngle(arg string) (int, bool) {
	trimmed := strings.TrimSpace(strings.ToLower(arg))
	if !strings.HasSuffix(trimmed, "deg") {
		return 0, false
	}
	deg, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(trimmed, "deg")))
	if err != nil {
		return 0, false
	}
	return deg, true
}

func parseSolid(s string) (Value, bool) {
	if hex, alpha, ok := parseHex(s); ok {
		return Value{Mode: ModeSolid, Hex: hex, Alpha: alpha}, true
	}
	if hex, alpha, ok := parseRGB(s); ok {
		return Value{Mode: ModeSolid, Hex: hex, Alpha: alpha}, true
	}
	return Value{}, false
}

func parseHex(s string) (string, int, bool) {
	if !strings.HasPrefix(s, "#") {
		return "", 0, false
	}
	digits := s[1:]
	for _, r := range digits {
		if !isHexDigit(r) {
			return "", 0, false
		}
	}
	switch len(digits) {
	case 3:
		// #abc expands to #aabbcc.
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return "#" + strings.ToLower(b.String()), 100, true
	case 6:
		return "#" + strings.ToLower(digits), 100, true
	case 8:
		// 8-digit hex truncates to RGB with the alpha tracked separately.
		alphaByte, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return "", 0, false
		}
		alpha := int((float64(alphaByte)/255)*100 + 0.5)
		return "#" + strings.ToLower(digits[:6]), alpha, true
	}
	return "", 0, false
}

func parseRGB(s string) (string, int, bool) {
	lower := strings.ToLower(s)
	var inner string
	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(s, ")"):
		inner = s[len("rgba(") : len(s)-1]
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(s, ")"):
		inner = s[len("rgb(") : len(s)-1]
	default:
		return "", 0, false
	}

	parts := SplitTopLevel(inner)
	if len(parts) != 3 && len(parts) != 4 {
		return "", 0, false
	}

	channels := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return "", 0, false
		}
		channels[i] = n
	}

	alpha := 100
	if len(parts) == 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return "", 0, false
		}
		alpha = int(f*100 + 0.5)
	}

	return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2]), alpha, true
}

func formatSolid(hex string, alpha int) string {
	if alpha >= 100 {
		return hex
	}
	r, g, b, ok := hexChannels(hex)
	if !ok {
		return hex
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(alpha))
}

// formatAlpha renders the 0-100 alpha as a 0-1 fraction with at most two
// decimals, trailing zeros and a dangling period trimmed.
func formatAlpha(alpha int) string {
	s := strconv.FormatFloat(float64(alpha)/100, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return "0"
	}
	return s
}

func hexChannels(hex string) (int, int, int, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(r), int(g), int(b), true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// SplitTopLevel splits a comma-separated argument list while tracking
// parenthesis depth, so a gradient stop like rgba(0,0,0,0.5) survives as a
// single argument. A naive split on every comma would tear it apart.
func SplitTopLevel(s string) []string {
	var (
		args  []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	tail := strings.TrimSpace(s[start:])
	if tail != "" || len(args) > 0 {
		args = append(args, tail)
	}
	return args
}

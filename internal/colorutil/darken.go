// Package colorutil holds small helpers for manipulating theme colors.
package colorutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	// FallbackColor replaces any color that is not a #RRGGBB string. It is the theme black.
	FallbackColor = "#232323"

	// DefaultDarkenPercentage is the darkening applied to hover and pressed states.
	DefaultDarkenPercentage = 0.2
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Valid reports whether color is a #RRGGBB hex string.
func Valid(color string) bool {
	return hexColorPattern.MatchString(color)
}

// Darken returns color with every channel reduced by percentage of its value.
//
// An empty or malformed color is replaced by FallbackColor and a warning is logged;
// Darken never fails. The result is always lowercase #rrggbb for percentages in [0, 1].
// Percentages outside that range are not checked.
func Darken(color string, percentage float64) string {
	if !Valid(color) {
		log.Warn().Str("color", color).Msg("invalid hex color, using fallback")
		color = FallbackColor
	}

	r := channel(color[1:3])
	g := channel(color[3:5])
	b := channel(color[5:7])

	return fmt.Sprintf("#%s%s%s",
		hexByte(darkenChannel(r, percentage)),
		hexByte(darkenChannel(g, percentage)),
		hexByte(darkenChannel(b, percentage)),
	)
}

func channel(pair string) int64 {
	// pair is already validated against hexColorPattern
	v, _ := strconv.ParseInt(pair, 16, 64)
	return v
}

func darkenChannel(c int64, percentage float64) int64 {
	// rounds half toward +Inf so that x.5 always rounds up, including for negative products
	delta := int64(math.Floor(float64(c)*percentage + 0.5))
	return max(c-delta, 0)
}

func hexByte(v int64) string {
	s := strconv.FormatInt(v, 16)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

// Package dial holds the arithmetic behind the cipher wheel: slot angles,
// assembly rotation, drag quantisation and the reference letter/number pair.
//
// Nothing here knows about rendering. Angles are in degrees; slot angles are
// measured clockwise from twelve o'clock, pointer angles follow atan2 in
// screen coordinates (y grows downward, so positive deltas are clockwise).
package dial

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/treykane/cipher-nexus/internal/cipher"
)

// Slots is the number of discrete positions per full turn of the wheel.
const Slots = cipher.Size

// StepDegrees is the angular width of one slot.
const StepDegrees = 360.0 / Slots

// DefaultReferenceLetter labels the dial when nothing else was chosen.
const DefaultReferenceLetter byte = 'A'

// ReferenceNumber is the number-ring value aligned with the outer letter
// when the wheel is turned by shift.
func ReferenceNumber(shift int, letter byte) int {
	return cipher.Normalize(shift + letterIndex(letter))
}

// ShiftForReference back-solves the shift that makes letter read n.
func ShiftForReference(n int, letter byte) int {
	return cipher.Normalize(n - letterIndex(letter))
}

// ParseReferenceNumber accepts one or two decimal digits in [0, Slots).
func ParseReferenceNumber(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > 2 {
		return 0, false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n >= Slots {
		return 0, false
	}
	return n, true
}

// NormalizeLetter upper-cases r and reports whether it is in A-Z.
func NormalizeLetter(r rune) (byte, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return byte(r), true
}

// LastLetter returns the last alphabetic rune of value, upper-cased.
func LastLetter(value string) (byte, bool) {
	runes := []rune(value)
	for i := len(runes) - 1; i >= 0; i-- {
		if l, ok := NormalizeLetter(runes[i]); ok {
			return l, true
		}
	}
	return 0, false
}

// PointerAngle returns the angle of the offset (dx, dy) from the wheel centre.
func PointerAngle(dx, dy float64) float64 {
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// DragShift converts the angle swept since the drag started into a shift.
// Turning the assembly clockwise by one slot lowers the shift by one.
func DragShift(startShift int, startAngle, currentAngle float64) int {
	delta := currentAngle - startAngle
	steps := int(math.Floor(delta/360*Slots + 0.5))
	return cipher.Normalize(startShift - steps)
}

// SlotAngle is the fixed angle of slot i on a ring.
func SlotAngle(i int) float64 {
	return float64(i) / Slots * 360
}

// AssemblyRotation is how far the inner letter and number rings are turned.
func AssemblyRotation(shift int) float64 {
	return -(float64(cipher.Normalize(shift)) / Slots) * 360
}

// Point converts a clockwise-from-top angle into cartesian coordinates.
func Point(cx, cy, radius, angle float64) (x, y float64) {
	rad := angle * math.Pi / 180
	return cx + radius*math.Sin(rad), cy - radius*math.Cos(rad)
}

// Readout formats a buffer for the centre hub.
func Readout(s string) string {
	runes := []rune(s)
	switch {
	case len(runes) == 0:
		return "---"
	case len(runes) > 10:
		return string(runes[:8]) + "..."
	default:
		return s
	}
}

// PadNumber formats the reference number as two digits.
func PadNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}

func letterIndex(letter byte) int {
	if i := cipher.Index(letter); i >= 0 {
		return i
	}
	return 0
}

package dial

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestReferenceNumberRoundTrip(t *testing.T) {
	for shift := 0; shift < Slots; shift++ {
		for letter := byte('A'); letter <= 'Z'; letter++ {
			want := (shift + int(letter-'A')) % Slots
			if got := ReferenceNumber(shift, letter); got != want {
				t.Fatalf("ReferenceNumber(%d, %c) = %d, want %d", shift, letter, got, want)
			}
		}
	}
	for n := 0; n < Slots; n++ {
		for letter := byte('A'); letter <= 'Z'; letter++ {
			s := ShiftForReference(n, letter)
			if s < 0 || s >= Slots {
				t.Fatalf("ShiftForReference(%d, %c) = %d out of range", n, letter, s)
			}
			if got := ReferenceNumber(s, letter); got != n {
				t.Fatalf("letter %c: edited %d, re-derived %d", letter, n, got)
			}
		}
	}
}

func TestParseReferenceNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{in: "0", want: 0, ok: true},
		{in: "07", want: 7, ok: true},
		{in: "25", want: 25, ok: true},
		{in: "26", ok: false},
		{in: "99", ok: false},
		{in: "", ok: false},
		{in: "1a", ok: false},
		{in: "-1", ok: false},
		{in: "100", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseReferenceNumber(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Fatalf("ParseReferenceNumber(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDragShiftQuantisesToWholeSlots(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta float64
		want  int
	}{
		{name: "one slot clockwise", start: 5, delta: StepDegrees, want: 4},
		{name: "one slot counter clockwise", start: 5, delta: -StepDegrees, want: 6},
		{name: "wraps below zero", start: 0, delta: StepDegrees, want: 25},
		{name: "wraps above 25", start: 25, delta: -StepDegrees, want: 0},
		{name: "under half a slot", start: 10, delta: StepDegrees * 0.4, want: 10},
		{name: "full turn", start: 3, delta: 360, want: 3},
		{name: "atan2 seam", start: 3, delta: -360 + StepDegrees, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DragShift(tt.start, 30, 30+tt.delta); got != tt.want {
				t.Fatalf("DragShift(%d, delta %.3f) = %d, want %d", tt.start, tt.delta, got, tt.want)
			}
		})
	}
}

func TestPointerAngle(t *testing.T) {
	cases := []struct {
		dx, dy, want float64
	}{
		{dx: 1, dy: 0, want: 0},
		{dx: 0, dy: 1, want: 90},
		{dx: -1, dy: 0, want: 180},
		{dx: 0, dy: -1, want: -90},
	}
	for _, c := range cases {
		if got := PointerAngle(c.dx, c.dy); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("PointerAngle(%v, %v) = %v, want %v", c.dx, c.dy, got, c.want)
		}
	}
}

func TestAssemblyRotationAndSlots(t *testing.T) {
	if got := AssemblyRotation(0); got != 0 {
		t.Fatalf("AssemblyRotation(0) = %v", got)
	}
	if got := AssemblyRotation(13); got != -180 {
		t.Fatalf("AssemblyRotation(13) = %v, want -180", got)
	}
	if got := AssemblyRotation(27); math.Abs(got+StepDegrees) > 1e-9 {
		t.Fatalf("AssemblyRotation(27) = %v, want %v", got, -StepDegrees)
	}
	if got := SlotAngle(13); got != 180 {
		t.Fatalf("SlotAngle(13) = %v, want 180", got)
	}
}

func TestPoint(t *testing.T) {
	type xy struct{ X, Y float64 }
	approx := cmpopts.EquateApprox(0, 1e-9)
	cases := []struct {
		angle float64
		want  xy
	}{
		{angle: 0, want: xy{X: 10, Y: 5}},
		{angle: 90, want: xy{X: 15, Y: 10}},
		{angle: 180, want: xy{X: 10, Y: 15}},
		{angle: 270, want: xy{X: 5, Y: 10}},
	}
	for _, c := range cases {
		x, y := Point(10, 10, 5, c.angle)
		if diff := cmp.Diff(c.want, xy{X: x, Y: y}, approx); diff != "" {
			t.Fatalf("Point at %v mismatch (-want +got):\n%s", c.angle, diff)
		}
	}
}

func TestReadout(t *testing.T) {
	tests := map[string]string{
		"":            "---",
		"CLAYTON":     "CLAYTON",
		"ABCDEFGHIJ":  "ABCDEFGHIJ",
		"ABCDEFGHIJK": "ABCDEFGH...",
	}
	for in, want := range tests {
		if got := Readout(in); got != want {
			t.Fatalf("Readout(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLastLetter(t *testing.T) {
	if l, ok := LastLetter("ab"); !ok || l != 'B' {
		t.Fatalf("LastLetter(ab) = %c, %v", l, ok)
	}
	if l, ok := LastLetter("q7!"); !ok || l != 'Q' {
		t.Fatalf("LastLetter(q7!) = %c, %v", l, ok)
	}
	if _, ok := LastLetter("42"); ok {
		t.Fatal("expected no letter in 42")
	}
}

func TestStepDegreesIsFractional(t *testing.T) {
	if want := 360.0 / 26; StepDegrees != want {
		t.Fatalf("StepDegrees = %v, want %v", StepDegrees, want)
	}
	if got := SlotAngle(1); math.Abs(got-360.0/26) > 1e-9 {
		t.Fatalf("SlotAngle(1) = %v, want %v", got, 360.0/26)
	}
}

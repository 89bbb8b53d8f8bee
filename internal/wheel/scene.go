package wheel

import (
	"strconv"

	"github.com/treykane/cipher-nexus/internal/dial"
)

// Scene dimensions for the vector and raster renderers, in viewBox units.
const (
	sceneSize    = 500
	sceneCentre  = sceneSize / 2
	ringOuter    = 240.0
	ringInner    = 185.0
	ringNumber   = 135.0
	ringHub      = 110.0
	outerMid     = ringInner + (ringOuter-ringInner)/2
	innerMid     = ringNumber + (ringInner-ringNumber)/2
	numberMid    = ringHub + (ringNumber-ringHub)/2
	highlightW   = 30.0
	highlightTop = ringNumber
	highlightH   = ringNumber - ringHub
)

// CaptureSize is the edge of the square PNG handed to the remix service.
const CaptureSize = 1000

// Palette shared by the SVG and raster renderers.
const (
	colourOuter       = "#2563eb"
	colourOuterStroke = "#1e3a8a"
	colourOuterTick   = "#1d4ed8"
	colourInner       = "#b91c1c"
	colourInnerStroke = "#7f1d1d"
	colourInnerTick   = "#991b1b"
	colourNumber      = "#22c55e"
	colourNumberStr   = "#15803d"
	colourNumberText  = "#dcfce7"
	colourHighlight   = "#facc15"
	colourHighlightSt = "#854d0e"
	colourHighlightTx = "#1e293b"
	colourHubStroke   = "#0f172a"
	colourHubInner    = "#1e293b"
	colourHubOuter    = "#000000"
	colourLabel       = "#cbd5e1"
	colourCipher      = "#ef4444"
	colourPlain       = "#3b82f6"
	colourWhite       = "#ffffff"
)

// hubLine is one line of the fixed centre readout.
type hubLine struct {
	y     float64
	size  float64
	parts []hubPart
}

type hubPart struct {
	text   string
	colour string
}

// hubLines is the centre readout shared by every renderer.
func hubLines(p Props) []hubLine {
	return []hubLine{
		{y: -74, size: 24, parts: []hubPart{
			{text: string(p.letter()), colour: colourWhite},
			{text: " = ", colour: colourCipher},
			{text: strconv.Itoa(p.ReferenceNumber()), colour: colourHighlight},
		}},
		{y: -32, size: 12.5, parts: []hubPart{{text: "CIPHER CODE", colour: colourLabel}}},
		{y: 0, size: 28, parts: []hubPart{{text: dial.Readout(p.CipherText), colour: colourCipher}}},
		{y: 25, size: 12.5, parts: []hubPart{{text: "CRACKED CODE", colour: colourLabel}}},
		{y: 57, size: 28, parts: []hubPart{{text: dial.Readout(p.PlainText), colour: colourPlain}}},
	}
}

func (l hubLine) text() string {
	s := ""
	for _, p := range l.parts {
		s += p.text
	}
	return s
}

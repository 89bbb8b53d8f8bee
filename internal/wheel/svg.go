package wheel

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/treykane/cipher-nexus/internal/cipher"
	"github.com/treykane/cipher-nexus/internal/dial"
)

// SVGElementID is the id of the root element of the wheel markup.
const SVGElementID = "cipher-wheel-svg"

// SVG writes the wheel scene as standalone SVG markup.
func SVG(w io.Writer, p Props) {
	c := sceneCentre
	canvas := svg.New(w)
	canvas.Start(sceneSize, sceneSize,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, sceneSize, sceneSize),
		fmt.Sprintf(`id="%s"`, SVGElementID))

	canvas.Def()
	canvas.RadialGradient("diskGradient", 50, 50, 50, 50, 50, []svg.Offcolor{
		{Offset: 0, Color: colourHubInner, Opacity: 1},
		{Offset: 100, Color: colourHubOuter, Opacity: 1},
	})
	canvas.DefEnd()

	// Fixed outer alphabet.
	canvas.Circle(c, c, px(ringOuter), fill(colourOuter, colourOuterStroke, 2))
	for i := 0; i < dial.Slots; i++ {
		canvas.Gtransform(rotate(dial.SlotAngle(i)))
		canvas.Line(c, c-px(ringOuter), c, c-px(ringInner), stroke(colourOuterTick, 1))
		canvas.Text(c, c-px(outerMid), string(cipher.Letter(i)), label(colourWhite, 24, 900, "Inter, sans-serif"))
		canvas.Gend()
	}

	// Inner alphabet and numbers turn together.
	highlighted := p.ReferenceNumber()
	canvas.Gtransform(rotate(dial.AssemblyRotation(p.Shift)))
	canvas.Circle(c, c, px(ringInner), fill(colourInner, colourInnerStroke, 2))
	for i := 0; i < dial.Slots; i++ {
		canvas.Gtransform(rotate(dial.SlotAngle(i)))
		canvas.Line(c, c-px(ringInner), c, c-px(ringNumber), stroke(colourInnerTick, 1))
		canvas.Text(c, c-px(innerMid), string(cipher.Letter(i)), label(colourWhite, 22, 800, "Inter, sans-serif"))
		canvas.Gend()
	}
	canvas.Circle(c, c, px(ringNumber), fill(colourNumber, colourNumberStr, 2))
	for i := 0; i < dial.Slots; i++ {
		canvas.Gtransform(rotate(dial.SlotAngle(i)))
		textColour := colourNumberText
		if i == highlighted {
			canvas.Rect(c-px(highlightW/2), c-px(highlightTop), px(highlightW), px(highlightH),
				fill(colourHighlight, colourHighlightSt, 1))
			textColour = colourHighlightTx
		}
		canvas.Text(c, c-px(numberMid), strconv.Itoa(i), label(textColour, 16, 800, "JetBrains Mono, monospace"))
		canvas.Gend()
	}
	canvas.Gend()

	// Fixed hub readout.
	canvas.Circle(c, c, px(ringHub), "fill:url(#diskGradient);stroke:"+colourHubStroke+";stroke-width:4")
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", c, c))
	for _, line := range hubLines(p) {
		x := -monoWidth(line.text(), line.size) / 2
		for _, part := range line.parts {
			canvas.Text(px(x), px(line.y), part.text, fmt.Sprintf(
				"text-anchor:start;font-weight:900;font-family:JetBrains Mono, monospace;white-space:pre;fill:%s;font-size:%.1fpx",
				part.colour, line.size))
			x += monoWidth(part.text, line.size)
		}
	}
	canvas.Gend()
	canvas.End()
}

// monoWidth estimates the advance of s in a monospace face.
func monoWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.6
}

func px(v float64) int {
	return int(math.Round(v))
}

func rotate(angle float64) string {
	return fmt.Sprintf("rotate(%.4f,%d,%d)", angle, sceneCentre, sceneCentre)
}

func fill(colour, strokeColour string, width int) string {
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%d", colour, strokeColour, width)
}

func stroke(colour string, width int) string {
	return fmt.Sprintf("stroke:%s;stroke-width:%d", colour, width)
}

func label(colour string, size float64, weight int, family string) string {
	return fmt.Sprintf("text-anchor:middle;dominant-baseline:central;fill:%s;font-size:%.1fpx;font-weight:%d;font-family:%s",
		colour, size, weight, family)
}

package wheel

import (
	"bytes"
	"fmt"
	"image/png"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"

	"github.com/treykane/cipher-nexus/internal/cipher"
	"github.com/treykane/cipher-nexus/internal/dial"
)

var (
	faceFont     *truetype.Font
	faceFontErr  error
	faceFontOnce sync.Once
)

func loadFont() (*truetype.Font, error) {
	faceFontOnce.Do(func() {
		faceFont, faceFontErr = truetype.Parse(gomonobold.TTF)
	})
	return faceFont, faceFontErr
}

// Capture rasterises the wheel scene onto a CaptureSize square and returns
// the PNG encoding.
func Capture(p Props) ([]byte, error) {
	dc, err := drawScene(p, CaptureSize)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawScene paints the wheel at size x size pixels.
func drawScene(p Props, size int) (*gg.Context, error) {
	ttf, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	k := float64(size) / sceneSize
	c := float64(sceneCentre) * k
	faces := map[float64]font.Face{}
	setFace := func(dc *gg.Context, pt float64) {
		face, ok := faces[pt]
		if !ok {
			face = truetype.NewFace(ttf, &truetype.Options{Size: pt * k, DPI: 72, Hinting: font.HintingFull})
			faces[pt] = face
		}
		dc.SetFontFace(face)
	}

	dc := gg.NewContext(size, size)

	disc := func(radius float64, fillHex, strokeHex string, width float64) {
		dc.DrawCircle(c, c, radius*k)
		dc.SetHexColor(fillHex)
		dc.FillPreserve()
		dc.SetHexColor(strokeHex)
		dc.SetLineWidth(width * k)
		dc.Stroke()
	}
	spoke := func(from, to float64, hex string) {
		dc.SetHexColor(hex)
		dc.SetLineWidth(k)
		dc.DrawLine(c, c-from*k, c, c-to*k)
		dc.Stroke()
	}
	glyph := func(text string, radius, pt float64, hex string) {
		setFace(dc, pt)
		dc.SetHexColor(hex)
		dc.DrawStringAnchored(text, c, c-radius*k, 0.5, 0.35)
	}

	disc(ringOuter, colourOuter, colourOuterStroke, 2)
	for i := 0; i < dial.Slots; i++ {
		dc.Push()
		dc.RotateAbout(gg.Radians(dial.SlotAngle(i)), c, c)
		spoke(ringOuter, ringInner, colourOuterTick)
		glyph(string(cipher.Letter(i)), outerMid, 24, colourWhite)
		dc.Pop()
	}

	highlighted := p.ReferenceNumber()
	dc.Push()
	dc.RotateAbout(gg.Radians(dial.AssemblyRotation(p.Shift)), c, c)
	disc(ringInner, colourInner, colourInnerStroke, 2)
	for i := 0; i < dial.Slots; i++ {
		dc.Push()
		dc.RotateAbout(gg.Radians(dial.SlotAngle(i)), c, c)
		spoke(ringInner, ringNumber, colourInnerTick)
		glyph(string(cipher.Letter(i)), innerMid, 22, colourWhite)
		dc.Pop()
	}
	disc(ringNumber, colourNumber, colourNumberStr, 2)
	for i := 0; i < dial.Slots; i++ {
		dc.Push()
		dc.RotateAbout(gg.Radians(dial.SlotAngle(i)), c, c)
		textHex := colourNumberText
		if i == highlighted {
			dc.DrawRectangle(c-highlightW/2*k, c-highlightTop*k, highlightW*k, highlightH*k)
			dc.SetHexColor(colourHighlight)
			dc.FillPreserve()
			dc.SetHexColor(colourHighlightSt)
			dc.SetLineWidth(k)
			dc.Stroke()
			textHex = colourHighlightTx
		}
		glyph(fmt.Sprint(i), numberMid, 16, textHex)
		dc.Pop()
	}
	dc.Pop()

	hub := gg.NewRadialGradient(c, c, 0, c, c, ringHub*k)
	hub.AddColorStop(0, hexColour(colourHubInner))
	hub.AddColorStop(1, hexColour(colourHubOuter))
	dc.DrawCircle(c, c, ringHub*k)
	dc.SetFillStyle(hub)
	dc.FillPreserve()
	dc.SetHexColor(colourHubStroke)
	dc.SetLineWidth(4 * k)
	dc.Stroke()

	for _, line := range hubLines(p) {
		setFace(dc, line.size)
		total, _ := dc.MeasureString(line.text())
		x := c - total/2
		for _, part := range line.parts {
			dc.SetHexColor(part.colour)
			dc.DrawStringAnchored(part.text, x, c+line.y*k, 0, 0)
			w, _ := dc.MeasureString(part.text)
			x += w
		}
	}
	return dc, nil
}

// Package wheel is the rotating cipher wheel: a Bubble Tea component that
// renders the four rings and the centre hub, and turns mouse drags and edits
// of the reference letter/number pair into intent messages for its parent.
//
// The widget never owns the shift, the reference letter or the text buffers.
// The parent passes them in as Props on every call and applies the
// ShiftChangedMsg / ReferenceLetterChangedMsg values the widget emits.
package wheel

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cipher-nexus/internal/cipher"
	"github.com/treykane/cipher-nexus/internal/dial"
)

// Props is the read-only state the parent hands down on every render.
type Props struct {
	Shift           int
	ReferenceLetter byte
	CipherText      string
	PlainText       string
}

// ReferenceNumber is the number aligned with the reference letter.
func (p Props) ReferenceNumber() int {
	return dial.ReferenceNumber(p.Shift, p.letter())
}

func (p Props) letter() byte {
	if cipher.Index(p.ReferenceLetter) < 0 {
		return dial.DefaultReferenceLetter
	}
	return p.ReferenceLetter
}

// Source identifies which input produced a shift intent.
type Source int

const (
	SourceDrag Source = iota
	SourceReferenceNumber
)

// ShiftChangedMsg asks the parent to adopt a new shift.
type ShiftChangedMsg struct {
	Shift  int
	Source Source
}

// ReferenceLetterChangedMsg asks the parent to adopt a new reference letter.
type ReferenceLetterChangedMsg struct {
	Letter byte
}

// Field names one of the two editable hub fields.
type Field int

const (
	FieldNone Field = iota
	FieldLetter
	FieldNumber
)

// Options configures a widget. A non-interactive widget only renders.
type Options struct {
	Interactive bool
	Geometry    Geometry
}

// dragSession lives between a press on the assembly and the next release.
type dragSession struct {
	startAngle float64
	startShift int
}

// Widget is the cipher wheel component.
type Widget struct {
	interactive bool
	geo         Geometry

	originX int
	originY int

	drag *dragSession

	focus  Field
	letter textinput.Model
	number textinput.Model
}

// New builds a widget. A zero Geometry selects DefaultGeometry.
func New(opts Options) *Widget {
	geo := opts.Geometry
	if geo.OuterRadius == 0 {
		geo = DefaultGeometry()
	}

	// The hub draws its own field cells, so the inputs never blink.
	letter := textinput.New()
	letter.Prompt = ""
	letter.CharLimit = 4
	letter.Cursor.SetMode(cursor.CursorStatic)

	number := textinput.New()
	number.Prompt = ""
	number.CharLimit = 2
	number.Cursor.SetMode(cursor.CursorStatic)

	return &Widget{
		interactive: opts.Interactive,
		geo:         geo,
		letter:      letter,
		number:      number,
	}
}

// Interactive reports whether the widget accepts drags and field edits.
func (w *Widget) Interactive() bool {
	return w.interactive
}

// Geometry returns the ring layout used for rendering and hit tests.
func (w *Widget) Geometry() Geometry {
	return w.geo
}

// SetOrigin records the screen cell where the widget's top-left corner is drawn.
func (w *Widget) SetOrigin(x, y int) {
	w.originX = x
	w.originY = y
}

// Dragging reports whether a drag gesture is in progress.
func (w *Widget) Dragging() bool {
	return w.drag != nil
}

// Focused returns the hub field currently receiving keys.
func (w *Widget) Focused() Field {
	return w.focus
}

// Focus moves keyboard focus to a hub field and loads its derived value.
func (w *Widget) Focus(field Field, p Props) tea.Cmd {
	if !w.interactive {
		return nil
	}
	w.Blur()
	w.Sync(p, FieldNone)
	w.focus = field
	switch field {
	case FieldLetter:
		return w.letter.Focus()
	case FieldNumber:
		return w.number.Focus()
	}
	return nil
}

// Blur releases keyboard focus.
func (w *Widget) Blur() {
	w.letter.Blur()
	w.number.Blur()
	w.focus = FieldNone
}

// Sync reloads the field buffers from props, except the one being edited.
func (w *Widget) Sync(p Props, except Field) {
	if except != FieldLetter {
		w.letter.SetValue(string(p.letter()))
		w.letter.CursorEnd()
	}
	if except != FieldNumber {
		w.number.SetValue(dial.PadNumber(p.ReferenceNumber()))
		w.number.CursorEnd()
	}
}

// Update handles mouse gestures and keys for the focused hub field.
func (w *Widget) Update(msg tea.Msg, p Props) tea.Cmd {
	if !w.interactive {
		return nil
	}
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return w.handleMouse(msg, p)
	case tea.KeyMsg:
		return w.handleKey(msg, p)
	}
	return nil
}

func (w *Widget) handleMouse(msg tea.MouseMsg, p Props) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		dx, dy := w.offsetFromCentre(msg.X, msg.Y)
		if !w.geo.OnAssembly(dx, dy) {
			return nil
		}
		w.drag = &dragSession{
			startAngle: dial.PointerAngle(dx, dy),
			startShift: cipher.Normalize(p.Shift),
		}
	case tea.MouseActionMotion:
		if w.drag == nil {
			return nil
		}
		dx, dy := w.offsetFromCentre(msg.X, msg.Y)
		shift := dial.DragShift(w.drag.startShift, w.drag.startAngle, dial.PointerAngle(dx, dy))
		return emit(ShiftChangedMsg{Shift: shift, Source: SourceDrag})
	case tea.MouseActionRelease:
		// Releases arrive for the whole terminal, so a drag that left the
		// wheel still ends here.
		w.drag = nil
	}
	return nil
}

func (w *Widget) handleKey(msg tea.KeyMsg, p Props) tea.Cmd {
	switch w.focus {
	case FieldLetter:
		if msg.Type == tea.KeyEnter {
			w.Sync(p, FieldNone)
			return nil
		}
		var cmd tea.Cmd
		w.letter, cmd = w.letter.Update(msg)
		l, ok := dial.LastLetter(w.letter.Value())
		if !ok {
			return cmd
		}
		w.letter.SetValue(string(l))
		w.letter.CursorEnd()
		if l == p.letter() {
			return cmd
		}
		return tea.Batch(cmd, emit(ReferenceLetterChangedMsg{Letter: l}))
	case FieldNumber:
		if msg.Type == tea.KeyEnter {
			w.Sync(p, FieldNone)
			return nil
		}
		var cmd tea.Cmd
		w.number, cmd = w.number.Update(msg)
		n, ok := dial.ParseReferenceNumber(w.number.Value())
		if !ok {
			// A full buffer that is out of range goes straight back to the
			// derived value. Shorter buffers are still being typed.
			if len(strings.TrimSpace(w.number.Value())) >= w.number.CharLimit {
				w.Sync(p, FieldLetter)
			}
			return cmd
		}
		shift := dial.ShiftForReference(n, p.letter())
		return tea.Batch(cmd, emit(ShiftChangedMsg{Shift: shift, Source: SourceReferenceNumber}))
	}
	return nil
}

// FieldAt returns the hub field drawn at screen cell x, y, or FieldNone.
func (w *Widget) FieldAt(x, y int) Field {
	if !w.interactive {
		return FieldNone
	}
	_, cy := w.geo.Centre()
	row, col := y-w.originY, x-w.originX
	if row != int(cy)-hubFieldRowOffset {
		return FieldNone
	}
	// Same arithmetic as centreSegments for the six-cell "L = NN" line.
	start := w.geo.Cols()/2 - 3
	switch {
	case col >= start-1 && col <= start:
		return FieldLetter
	case col >= start+4 && col <= start+6:
		return FieldNumber
	}
	return FieldNone
}

// offsetFromCentre maps a screen cell to wheel units with y pointing down.
func (w *Widget) offsetFromCentre(x, y int) (float64, float64) {
	cx, cy := w.geo.Centre()
	dx := (float64(x-w.originX) - cx) / w.geo.Aspect
	dy := float64(y-w.originY) - cy
	return dx, dy
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

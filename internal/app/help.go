// help.go renders the "how it works" panel.
//
// The panel is markdown rendered through Glamour into a scrollable viewport.
// Key labels come from the live keybinding map, so overrides show up in the
// help text. Glamour renderers are cached per width in a small LRU because
// creating one is far slower than rendering with it.
//
// The style comes from CIPHER_NEXUS_GLAMOUR_STYLE or GLAMOUR_STYLE and
// defaults to "dark".
package app

import (
	"container/list"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const maxRendererCacheEntries = 4

var (
	rendererCacheMu    sync.Mutex
	rendererCache      = map[int]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[int]*list.Element{}
)

// toggleHelp opens or closes the help overlay.
func (m *Model) toggleHelp() {
	if m.overlay == overlayHelp {
		m.overlay = overlayNone
		m.status = "Help closed"
		return
	}
	m.overlay = overlayHelp
	m.helpWidth = 0
	m.refreshHelp()
	m.help.GotoTop()
	m.status = "Help"
}

// refreshHelp re-renders the help markdown when the width changed.
func (m *Model) refreshHelp() {
	width := max(20, m.help.Width)
	if width == m.helpWidth {
		return
	}
	content, err := renderMarkdown(m.helpMarkdown(), width)
	if err != nil {
		appLog.Warn("render help", "error", err)
		content = m.helpMarkdown()
	}
	m.help.SetContent(content)
	m.helpWidth = width
}

func (m *Model) helpMarkdown() string {
	k := func(action, fallback string) string {
		return "`" + m.allActionKeys(action, fallback) + "`"
	}
	var b strings.Builder
	b.WriteString("# How it works\n\n")
	b.WriteString("The Caesar cipher replaces every letter with the letter a fixed number of ")
	b.WriteString("positions further down the alphabet. The outer blue ring is the plain ")
	b.WriteString("alphabet; the red ring underneath it is the cipher alphabet, turned by the ")
	b.WriteString("shift. Read a letter on the outer ring and the letter under it is its ")
	b.WriteString("encoding.\n\n")
	b.WriteString("The green ring numbers the slots of the cipher alphabet. The highlighted ")
	b.WriteString("number is the one sitting under the reference letter in the hub, so ")
	fmt.Fprintf(&b, "`%c = %d` means the letter %c lines up with slot %d.\n\n",
		m.state.letter, m.state.referenceNumber(), m.state.letter, m.state.referenceNumber())

	b.WriteString("## Turning the wheel\n\n")
	b.WriteString("- Drag the red or green ring with the mouse. One letter per 1/26 of a turn.\n")
	fmt.Fprintf(&b, "- Nudge the shift slider with %s and %s.\n", k(actionShiftDown, "←"), k(actionShiftUp, "→"))
	fmt.Fprintf(&b, "- Type a reference letter (%s) or a slot number (%s) in the hub. ", k(actionEditLetter, "E"), k(actionEditNumber, "N"))
	b.WriteString("Numbers outside 0-25 are ignored.\n\n")

	b.WriteString("## Text\n\n")
	fmt.Fprintf(&b, "- Edit the decoded text (%s) or the encoded text (%s); the other one follows.\n", k(actionEditPlain, "P"), k(actionEditCipher, "C"))
	fmt.Fprintf(&b, "- %s swaps the two buffers as they are, without re-encoding.\n", k(actionSwap, "S"))
	fmt.Fprintf(&b, "- %s clears both buffers. The shift stays.\n", k(actionReset, "R"))
	fmt.Fprintf(&b, "- %s copies the encoded text, %s the decoded text.\n", k(actionCopyCipher, "Y"), k(actionCopyPlain, "Shift+Y"))
	fmt.Fprintf(&b, "- %s undoes a change to the shift, letter or text, %s redoes it.\n", k(actionUndo, "Ctrl+Z"), k(actionRedo, "Ctrl+Y"))
	b.WriteString("- Edits to config.yaml and the keymap file apply while the app runs.\n\n")

	b.WriteString("## AI Visualizer\n\n")
	fmt.Fprintf(&b, "Switch pages with %s. Type an instruction and press %s to send a ", k(actionTabNext, "Ctrl+T"), k(actionCommit, "Enter"))
	b.WriteString("1000x1000 snapshot of the wheel to Gemini. ")
	fmt.Fprintf(&b, "%s cancels, %s saves the result.\n\n", k(actionBlur, "Esc"), k(actionSaveArtwork, "Ctrl+S"))

	fmt.Fprintf(&b, "Close this panel with %s.\n", k(actionHelp, "?"))
	return b.String()
}

func renderMarkdown(markdown string, width int) (string, error) {
	renderer, err := getRenderer(width)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = 80
	}
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[width]; ok {
		if node, ok := rendererCacheNodes[width]; ok {
			rendererCacheOrder.MoveToBack(node)
		}
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[width] = renderer
	rendererCacheNodes[width] = rendererCacheOrder.PushBack(width)
	evictOldestRendererIfNeeded()
	return renderer, nil
}

func evictOldestRendererIfNeeded() {
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		width, _ := oldest.Value.(int)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, width)
		delete(rendererCacheNodes, width)
	}
}

// glamourStyleOption resolves the style. "auto" lets Glamour query the
// terminal background; anything unknown falls back to dark.
func glamourStyleOption() glamour.TermRendererOption {
	style := strings.ToLower(strings.TrimSpace(os.Getenv("CIPHER_NEXUS_GLAMOUR_STYLE")))
	if style == "" {
		style = strings.ToLower(strings.TrimSpace(os.Getenv("GLAMOUR_STYLE")))
	}
	if style == "" {
		style = "dark"
	}
	if style == "auto" {
		return glamour.WithAutoStyle()
	}
	switch style {
	case "dark", "light", "notty":
		return glamour.WithStandardStyle(style)
	default:
		return glamour.WithStandardStyle("dark")
	}
}

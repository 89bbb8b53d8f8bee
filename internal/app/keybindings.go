package app

import (
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/treykane/cipher-nexus/internal/config"
)

// ---------------------------------------------------------------------------
// Action constants
// ---------------------------------------------------------------------------
//
// Actions sit between physical key presses and behaviour: a key is looked up
// in keyToAction and the resulting action is dispatched by runAction.
//
// Users can override any assignment via the "keybindings" map in config.yaml
// or an external keymap file (default: ~/.cipher-nexus/keymap.yaml).
// ---------------------------------------------------------------------------

const (
	// actionQuit exits the application and cancels any remix in flight.
	actionQuit = "app.quit"

	// actionHelp toggles the "how it works" panel.
	actionHelp = "help.toggle"

	// actionHelpScrollUp and actionHelpScrollDown page through the help panel.
	actionHelpScrollUp   = "help.scroll.up"
	actionHelpScrollDown = "help.scroll.down"

	// actionTabNext switches between the cipher engine and the remix lab.
	actionTabNext = "tab.next"

	// actionFocusNext and actionFocusPrev cycle keyboard focus through the
	// editable fields of the active tab. In the lab, focus.next completes the
	// prompt from the highlighted suggestion.
	actionFocusNext = "focus.next"
	actionFocusPrev = "focus.prev"

	// actionBlur leaves the focused field, or cancels a running remix.
	actionBlur = "focus.blur"

	// actionCommit confirms the focused field. In the lab it starts a remix.
	actionCommit = "field.commit"

	// actionShiftDown and actionShiftUp move the shift slider by one.
	actionShiftDown = "shift.down"
	actionShiftUp   = "shift.up"

	// actionEditPlain and actionEditCipher focus the two text buffers.
	actionEditPlain  = "edit.plain"
	actionEditCipher = "edit.cipher"

	// actionEditLetter and actionEditNumber focus the hub fields of the wheel.
	actionEditLetter = "edit.letter"
	actionEditNumber = "edit.number"

	// actionSwap exchanges the plaintext and ciphertext buffers verbatim.
	actionSwap = "cipher.swap"

	// actionReset clears both buffers.
	actionReset = "cipher.reset"

	// actionCopyCipher and actionCopyPlain copy a buffer to the clipboard.
	actionCopyCipher = "copy.cipher"
	actionCopyPlain  = "copy.plain"

	// actionUndo and actionRedo step through the history of shift, letter
	// and buffer changes.
	actionUndo = "cipher.undo"
	actionRedo = "cipher.redo"

	// actionSuggestNext and actionSuggestPrev move through prompt suggestions.
	actionSuggestNext = "lab.suggest.next"
	actionSuggestPrev = "lab.suggest.prev"

	// actionSaveArtwork writes the last remix result to the download dir.
	actionSaveArtwork = "lab.save"
)

// defaultActionKeys maps each action to its factory-default key bindings.
//
// Key strings use the Bubble Tea notation:
//   - Modifier keys: "ctrl+", "alt+", "shift+"
//   - Special keys: "enter", "esc", "tab", "up", "down", "left", "right"
//   - Single characters: "s", "r", "?", etc.
//
// Printable keys only fire while no text field has focus; see
// forwardsToField.
var defaultActionKeys = map[string][]string{
	actionQuit:           {"q", "ctrl+c"},
	actionHelp:           {"?"},
	actionHelpScrollUp:   {"pgup"},
	actionHelpScrollDown: {"pgdown"},
	actionTabNext:        {"ctrl+t"},
	actionFocusNext:      {"tab"},
	actionFocusPrev:      {"shift+tab"},
	actionBlur:           {"esc"},
	actionCommit:         {"enter"},
	actionShiftDown:      {"left", "h", "-"},
	actionShiftUp:        {"right", "l", "+", "="},
	actionEditPlain:      {"p"},
	actionEditCipher:     {"c"},
	actionEditLetter:     {"e"},
	actionEditNumber:     {"n"},
	actionSwap:           {"s"},
	actionReset:          {"r"},
	actionCopyCipher:     {"y"},
	actionCopyPlain:      {"shift+y"},
	actionUndo:           {"ctrl+z", "u"},
	actionRedo:           {"ctrl+y"},
	actionSuggestNext:    {"down", "ctrl+n"},
	actionSuggestPrev:    {"up", "ctrl+p"},
	actionSaveArtwork:    {"ctrl+s"},
}

// ---------------------------------------------------------------------------
// Keybinding initialization
// ---------------------------------------------------------------------------

// loadKeybindings initializes the key and action maps from three sources, in
// order of increasing priority:
//
//  1. defaultActionKeys.
//  2. cfg.Keybindings from config.yaml.
//  3. The keymap file at cfg.KeymapFile, if it exists.
//
// Unknown action names are logged and ignored. An override replaces the
// action's full default key set.
func (m *Model) loadKeybindings(cfg config.Config) {
	// Start with a fresh copy of the factory defaults.
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}

	// Layer on inline config overrides (lower priority than keymap file).
	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}

	// Layer on external keymap file overrides (highest priority).
	fileOverrides := loadKeymapFile(cfg.KeymapFile)
	for action, key := range fileOverrides {
		m.applyKeybindingOverride(action, key)
	}

	// Build the reverse index for runtime key → action lookups.
	m.rebuildActionKeyIndex()
}

// loadKeymapFile reads a flat YAML map of action to key, for example:
//
//	cipher.swap: ctrl+x
//	cipher.reset: R
//
// A missing file returns nil silently. Other read or parse errors are logged.
func loadKeymapFile(path string) map[string]string {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			appLog.Warn("read keymap file", "path", path, "error", err)
		}
		return nil
	}
	overrides := map[string]string{}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		appLog.Warn("parse keymap file", "path", path, "error", err)
		return nil
	}
	return overrides
}

// applyKeybindingOverride replaces an action's full default key set with key.
func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex builds keyToAction from keyForAction. When two
// actions claim a key, the first one seen keeps it and the conflict is logged.
func (m *Model) rebuildActionKeyIndex() {
	m.keyToAction = map[string]string{}
	for action, keys := range m.keyForAction {
		for _, key := range keys {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// ---------------------------------------------------------------------------
// Key string normalization
// ---------------------------------------------------------------------------

// normalizeKeyString lower-cases a key string. A single upper-case letter
// becomes "shift+<letter>" because Bubble Tea reports shifted letters as
// upper-case runes.
//
//	normalizeKeyString("Ctrl+T")  → "ctrl+t"
//	normalizeKeyString(" Y ")     → "shift+y"
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	// Bubble Tea may report uppercase single rune keys for shifted letters.
	// Normalize "Y" → "shift+y" so config files can use either form.
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey returns the action bound to key, or "".
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" {
			continue
		}
		if slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func (m *Model) allActionKeys(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return strings.Join(keys, ", ")
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	special := map[string]string{
		"up":        "↑",
		"down":      "↓",
		"left":      "←",
		"right":     "→",
		"enter":     "Enter",
		"esc":       "Esc",
		"tab":       "Tab",
		"home":      "Home",
		"end":       "End",
		"pgup":      "PgUp",
		"pgdown":    "PgDn",
		"space":     "Space",
		"backspace": "Backspace",
	}
	if normalized == "+" {
		return "+"
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		if part == "" {
			continue
		}
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			runes := []rune(part)
			if len(runes) == 1 && runes[0] >= 'a' && runes[0] <= 'z' {
				parts[i] = strings.ToUpper(part)
			} else {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
	}
	return strings.Join(parts, "+")
}

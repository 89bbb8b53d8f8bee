// watcher.go reloads settings edited while the app is running.
//
// Every SettingsWatchInterval the model stats config.yaml and the keymap file.
// When either one's modification time or size changes, keybindings and the
// download directory are reloaded. The wheel state
// and both text buffers are left alone.
//
// Polling two files is cheap and needs no OS-specific event API.
package app

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cipher-nexus/internal/config"
)

// settingsWatchTickMsg is emitted by the poll timer.
type settingsWatchTickMsg struct{}

// settingsFileState records what a poll saw for one path. A missing file is
// recorded as the zero value.
type settingsFileState struct {
	ModNano int64
	Size    int64
}

// settingsSnapshot maps a watched path to its observed state.
type settingsSnapshot map[string]settingsFileState

func (m *Model) scheduleSettingsWatchTick() tea.Cmd {
	interval := m.settingsWatchInterval
	if interval <= 0 {
		interval = SettingsWatchInterval
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return settingsWatchTickMsg{}
	})
}

// watchedSettingsPaths lists the files whose edits are picked up live.
func (m *Model) watchedSettingsPaths() []string {
	paths := make([]string, 0, 2)
	if m.configPath != "" {
		paths = append(paths, m.configPath)
	}
	if m.cfg.KeymapFile != "" {
		paths = append(paths, m.cfg.KeymapFile)
	}
	return paths
}

// handleSettingsWatchTick compares a fresh snapshot with the last one. The
// first tick only records the baseline.
func (m *Model) handleSettingsWatchTick(_ settingsWatchTickMsg) (tea.Model, tea.Cmd) {
	snapshot := scanSettingsSnapshot(m.watchedSettingsPaths())
	if m.settingsSnapshot == nil {
		m.settingsSnapshot = snapshot
		return m, m.scheduleSettingsWatchTick()
	}
	if !settingsSnapshotsEqual(m.settingsSnapshot, snapshot) {
		m.settingsSnapshot = snapshot
		m.reloadSettings()
	}
	return m, m.scheduleSettingsWatchTick()
}

func scanSettingsSnapshot(paths []string) settingsSnapshot {
	snapshot := make(settingsSnapshot, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				appLog.Warn("stat settings file", "path", path, "error", err)
			}
			snapshot[path] = settingsFileState{}
			continue
		}
		snapshot[path] = settingsFileState{ModNano: info.ModTime().UnixNano(), Size: info.Size()}
	}
	return snapshot
}

func settingsSnapshotsEqual(left, right settingsSnapshot) bool {
	if len(left) != len(right) {
		return false
	}
	for path, l := range left {
		r, ok := right[path]
		if !ok || l != r {
			return false
		}
	}
	return true
}

// reloadSettings re-reads the config file and rebuilds the keymap.
func (m *Model) reloadSettings() {
	cfg, err := m.loadConfig()
	if err != nil {
		m.setStatusError("Settings reload failed", err)
		return
	}
	cfg.KeymapFile = firstNonEmpty(cfg.KeymapFile, m.cfg.KeymapFile)
	m.cfg.Keybindings = cfg.Keybindings
	m.cfg.KeymapFile = cfg.KeymapFile
	m.cfg.DownloadDir = cfg.DownloadDir
	m.loadKeybindings(m.cfg)
	m.helpWidth = 0
	if m.overlay == overlayHelp {
		m.refreshHelp()
	}
	m.status = "Reloaded settings"
	appLog.Info("reloaded settings", "keymap", m.cfg.KeymapFile)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// defaultConfigPath is where config.Load reads from, or "" when there is no
// home directory.
func defaultConfigPath() string {
	path, err := config.ConfigPath()
	if err != nil {
		return ""
	}
	return path
}

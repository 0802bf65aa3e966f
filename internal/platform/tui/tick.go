// Package tui provides the Bubble Tea front-end for Pyramid of Doom.
// It handles the terminal UI loop, input mapping and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pyramid/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// ConfigMsg carries reloaded configuration.
type ConfigMsg config.PyramidConfig

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForConfig returns a command that delivers the next reloaded config.
// It yields nothing once the channel is closed.
func waitForConfig(reloads <-chan config.PyramidConfig) tea.Cmd {
	if reloads == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-reloads
		if !ok {
			return nil
		}
		return ConfigMsg(cfg)
	}
}

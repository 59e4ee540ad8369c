package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMsg struct{ tag string }

func TestKeybindRegistry_Lookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("r", func() tea.Msg { return testMsg{"refresh"} }, "refresh")

	cmd := reg.Lookup("r", ModeRecovery)
	require.NotNil(t, cmd)
	assert.Equal(t, testMsg{"refresh"}, cmd())
	assert.Nil(t, reg.Lookup("x", ModeRecovery))
}

func TestKeybindRegistry_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("e", func() tea.Msg { return testMsg{"execute"} }, "execute plan", []AppMode{ModeRecovery})

	assert.NotNil(t, reg.Lookup("e", ModeRecovery))
	assert.Nil(t, reg.Lookup("e", ModeReports), "recovery-only binding must not fire on reports")
}

func TestKeybindRegistry_HelpLine(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDescForMode("r", func() tea.Msg { return RefreshMsg{} }, "refresh", []AppMode{ModeRecovery})
	reg.Bind("ctrl+c", tea.Quit) // no description, omitted from help

	help := reg.HelpLine(ModeRecovery)
	assert.Contains(t, help, "q: quit")
	assert.Contains(t, help, "r: refresh")
	assert.NotContains(t, help, "ctrl+c")

	help = reg.HelpLine(ModeSalary)
	assert.NotContains(t, help, "r: refresh")
}

func TestKeyHandler_Handle(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("r", func() tea.Msg { return RefreshMsg{} }, "refresh")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("r"), ModeRecovery)
	assert.True(t, consumed)
	require.NotNil(t, cmd)
	_, ok := cmd().(RefreshMsg)
	assert.True(t, ok)

	consumed, cmd = h.Handle(keyMsg("z"), ModeRecovery)
	assert.False(t, consumed)
	assert.Nil(t, cmd)
}

package ui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps single keys ("r", "q", "ctrl+c", "1") to commands.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key to a command. Overwrites any existing binding.
func (r *KeybindRegistry) Bind(key string, cmd tea.Cmd) {
	r.BindWithDesc(key, cmd, "")
}

// BindWithDesc registers a key with a description for the help line.
// The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(key string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(key, cmd, desc, nil)
}

// BindWithDescForMode registers a key with a description and mode filter.
// If modes is nil or empty, the binding applies to all modes.
func (r *KeybindRegistry) BindWithDescForMode(key string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[key] = cmd
	if desc != "" {
		r.descriptions[key] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[key] = modes
	}
}

// Lookup returns the command for a key in the given mode, or nil if not bound.
func (r *KeybindRegistry) Lookup(key string, mode AppMode) tea.Cmd {
	if !r.appliesToMode(key, mode) {
		return nil
	}
	return r.bindings[key]
}

// HelpLine renders a sorted "key: action" hint string for the given mode.
// Keys without a description are omitted.
func (r *KeybindRegistry) HelpLine(mode AppMode) string {
	keys := make([]string, 0, len(r.descriptions))
	for k := range r.descriptions {
		if r.bindings[k] != nil && r.appliesToMode(k, mode) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+r.descriptions[k])
	}
	return strings.Join(parts, "  ")
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(key string, mode AppMode) bool {
	modes, ok := r.modeFilter[key]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// KeyHandler dispatches key presses against the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for the registry.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd). If consumed is true the
// key was handled and should not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}

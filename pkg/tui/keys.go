package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stefanpenner/pagedo/pkg/config"
)

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Add        key.Binding
	AddItem    key.Binding
	AddGroup   key.Binding
	Delete     key.Binding
	Toggle     key.Binding
	CycleState key.Binding
	Rename     key.Binding
	Describe   key.Binding
	Clear      key.Binding
	Copy       key.Binding
	Quit       key.Binding
	Interrupt  key.Binding
	Backspace  key.Binding
}

// NewKeyMap builds bindings from configured keys.
func NewKeyMap(k config.KeyConfig) KeyMap {
	return KeyMap{
		Up:         binding(k.Up, "up"),
		Down:       binding(k.Down, "down"),
		Confirm:    binding(k.Confirm, "open"),
		Back:       binding(k.Back, "back"),
		Add:        binding(k.Add, "add"),
		AddItem:    binding(k.AddItem, "add item"),
		AddGroup:   binding(k.AddGroup, "add group"),
		Delete:     binding(k.Delete, "delete"),
		Toggle:     binding(k.Toggle, "fold group"),
		CycleState: binding(k.CycleState, "cycle state"),
		Rename:     binding(k.Rename, "rename"),
		Describe:   binding(k.Describe, "describe"),
		Clear:      binding(k.Clear, "clear group"),
		Copy:       binding(k.Copy, "copy title"),
		Quit:       binding(k.Quit, "quit"),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete char"),
		),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(matchKeys(keys)...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// matchKeys adds the "space" alias so a configured " " matches either way
// the terminal reports it.
func matchKeys(keys []string) []string {
	out := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, k)
		if k == " " {
			out = append(out, "space")
		}
	}
	return out
}

// helpKeys renders keys for the footer, e.g. "↑/k".
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case "up":
			names[i] = "↑"
		case "down":
			names[i] = "↓"
		case " ":
			names[i] = "space"
		default:
			names[i] = k
		}
	}
	return strings.Join(names, "/")
}

func shortHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// PageSelectHelp returns the footer help for the page list.
func (k KeyMap) PageSelectHelp() string {
	return shortHelp(k.Up, k.Down, k.Confirm, k.Add, k.Delete, k.Quit)
}

// BrowsingHelp returns the footer help while browsing a page.
func (k KeyMap) BrowsingHelp() string {
	return shortHelp(k.Up, k.Down, k.Toggle, k.CycleState, k.Add, k.Rename, k.Describe, k.Clear, k.Delete, k.Copy, k.Back)
}

// ChooseAddHelp returns the choices shown in the add popup.
func (k KeyMap) ChooseAddHelp() []string {
	return []string{
		"(" + k.AddItem.Help().Key + ") Add Item",
		"(" + k.AddGroup.Help().Key + ") Add Group",
	}
}

// TextEntryHelp returns the footer help while typing.
func (k KeyMap) TextEntryHelp() string {
	return k.Confirm.Help().Key + " confirm  " + k.Back.Help().Key + " cancel"
}

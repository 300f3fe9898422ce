package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	formLogin formKind = iota
	formRegister
	formAddress
	formShip
	formStock
)

type field struct {
	label       string
	placeholder string
	value       string
	secret      bool
}

// form is a stack of text inputs with one focused at a time.
type form struct {
	kind   formKind
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	target int64
}

func newForm(kind formKind, title string, fields ...field) *form {
	f := &form{kind: kind, title: title}
	for _, fd := range fields {
		ti := textinput.New()
		ti.Placeholder = fd.placeholder
		ti.CharLimit = 200
		ti.Width = 40
		ti.Prompt = "┃ "
		ti.SetValue(fd.value)
		if fd.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.labels = append(f.labels, fd.label)
		f.inputs = append(f.inputs, ti)
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// onLast reports whether the last input has focus.
func (f *form) onLast() bool { return f.focus == len(f.inputs)-1 }

func (f *form) move(delta int) {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) values() []string {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

func (f *form) set(i int, v string) {
	if i >= 0 && i < len(f.inputs) {
		f.inputs[i].SetValue(v)
	}
}

func (f *form) view() string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(f.title))
	b.WriteString("\n")
	for i, in := range f.inputs {
		b.WriteString(labelStyle.Render(f.labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("tab/↑/↓ move · enter submit · esc cancel"))
	return formStyle.Render(b.String())
}

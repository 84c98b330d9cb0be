package ui

import (
	"fmt"
	"strings"

	"github.com/undoapp/tracker/domain"
)

func (m *model) View() string {
	var b strings.Builder
	writeTitle(&b)

	switch m.mode {
	case modeAuth:
		m.writeAuth(&b)
	case modeAdd:
		m.writeAdd(&b)
	case modeCalendar:
		m.writeCalendar(&b)
	default:
		m.writeList(&b)
	}

	if m.status != "" {
		b.WriteString("\n  ! " + m.status + "\n")
	}
	return b.String()
}

func writeTitle(b *strings.Builder) {
	b.WriteString("\n  unDO — break free from unwanted habits\n\n")
}

func (m *model) writeAuth(b *strings.Builder) {
	label := "Log in"
	if m.signupMode {
		label = "Sign up"
	}
	b.WriteString("  " + label + "\n\n")

	writeField(b, "username", string(m.username), m.authFocus == fieldUsername)
	writeField(b, "password", strings.Repeat("*", len(m.password)), m.authFocus == fieldPassword)
	if m.signupMode {
		writeField(b, "email (optional)", string(m.email), m.authFocus == fieldEmail)
	}

	b.WriteString("\n  tab: next field · enter: submit · ctrl+s: switch login/signup · esc: quit\n")
}

func writeField(b *strings.Builder, label, value string, focused bool) {
	marker := "  "
	if focused {
		marker = "> "
	}
	fmt.Fprintf(b, "  %s%-18s %s\n", marker, label+":", value)
}

func (m *model) writeList(b *strings.Builder) {
	if m.manager == nil {
		b.WriteString("  No active session.\n")
		return
	}

	session := m.deps.Auth.Current()
	fmt.Fprintf(b, "  @%s\n\n", session.Account.Username)

	completed, total := m.manager.Progress()
	if total > 0 {
		fmt.Fprintf(b, "  %d of %d completed (%d%%)\n\n", completed, total, completed*100/total)
	}

	m.writeFilterBar(b)

	if m.selectedDate != nil {
		fmt.Fprintf(b, "  showing %s only (x to clear)\n\n", m.selectedDate.Format("Mon Jan 2 2006"))
	}

	visible := m.visible()
	if len(visible) == 0 {
		if m.selectedDate != nil {
			b.WriteString("  No tasks for this date.\n")
		} else {
			b.WriteString("  No tasks yet. Press a to add one.\n")
		}
	}
	for i, t := range visible {
		m.writeTask(b, t, i == m.cursor)
	}

	b.WriteString("\n  j/k: move · space: toggle · a: add · d: delete · h/l: filter · c: calendar · ctrl+l: logout · q: quit\n")
}

func (m *model) writeFilterBar(b *strings.Builder) {
	counts := m.manager.Counts()
	parts := make([]string, 0, len(m.filters))
	for i, f := range m.filters {
		label := string(f)
		if c, ok := m.deps.Categories[domain.Category(f)]; ok {
			label = c.Icon + " " + c.Label
		}
		entry := fmt.Sprintf("%s %d", label, counts.Count(f))
		if i == m.filterIdx {
			entry = "[" + entry + "]"
		}
		parts = append(parts, entry)
	}
	b.WriteString("  " + strings.Join(parts, "  ") + "\n\n")
}

func (m *model) writeTask(b *strings.Builder, t domain.Task, selected bool) {
	marker := "  "
	if selected {
		marker = "> "
	}
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	display := m.deps.Categories.Get(t.Category)
	line := fmt.Sprintf("  %s%s %s %s", marker, box, display.Icon, t.Title)
	if t.DueDate != nil {
		line += " · due " + t.DueDate.Format("Jan 2")
	}
	b.WriteString(line + "\n")
}

func (m *model) writeAdd(b *strings.Builder) {
	b.WriteString("  New task\n\n")
	writeField(b, "title", string(m.title), m.addFocus == 0)
	writeField(b, "due (YYYY-MM-DD)", string(m.due), m.addFocus == 1)

	display := m.deps.Categories.Get(domain.Categories()[m.categoryIdx])
	fmt.Fprintf(b, "    %-18s %s %s\n", "category:", display.Icon, display.Label)

	b.WriteString("\n  tab: field · left/right: category · enter: add · esc: cancel\n")
}

func (m *model) writeCalendar(b *strings.Builder) {
	fmt.Fprintf(b, "  %s\n\n", m.month.Format("January 2006"))
	b.WriteString("   Su  Mo  Tu  We  Th  Fr  Sa\n")

	first := int(m.month.Weekday())
	last := daysIn(m.month)
	b.WriteString(strings.Repeat("    ", first))
	for day := 1; day <= last; day++ {
		date := m.month.AddDate(0, 0, day-1)
		marker := " "
		switch m.manager.DayStatus(date) {
		case domain.DayStatusCompleted:
			marker = "•"
		case domain.DayStatusIncomplete:
			marker = "!"
		}
		if day == m.day {
			fmt.Fprintf(b, "[%2d%s", day, marker)
		} else {
			fmt.Fprintf(b, "%3d%s", day, marker)
		}
		if (first+day)%7 == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString("\n  • all done  ! has incomplete\n")
	b.WriteString("  arrows: move · n/p: month · enter: filter by day · esc: back\n")
}

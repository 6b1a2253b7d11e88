package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/lifecycle"
	"campaign-manager/internal/view"
)

// Inbox is a view.Notifier that keeps the latest notification for the
// next render.
type Inbox struct {
	mu   sync.Mutex
	last *view.Notification
}

func (i *Inbox) Notify(n view.Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.last = &n
}

// Take returns and clears the pending notification.
func (i *Inbox) Take() *view.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	n := i.last
	i.last = nil
	return n
}

// doneMsg reports that a coordinator action finished.
type doneMsg struct{ err error }

// Campaign form fields, in tab order.
var campaignFields = []string{"name", "objective", "daily_budget", "start_date", "end_date", "target_cpa"}

// Model is the bubbletea model of the admin client.
type Model struct {
	ctx    context.Context
	coord  *view.Coordinator
	inbox  *Inbox
	styles Styles

	cursor  int
	busy    int
	notice  *view.Notification
	confirm *domain.AdGroup

	inputs []textinput.Model
	focus  int
}

// New returns a model driving coord. inbox must be the notifier coord was
// built with.
func New(ctx context.Context, coord *view.Coordinator, inbox *Inbox) Model {
	return Model{ctx: ctx, coord: coord, inbox: inbox, styles: DefaultStyles()}
}

func (m Model) Init() tea.Cmd {
	return m.run(m.coord.ShowCampaigns)
}

func (m *Model) run(action func(context.Context) error) tea.Cmd {
	m.busy++
	ctx := m.ctx
	return func() tea.Msg {
		return doneMsg{err: action(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		if m.busy > 0 {
			m.busy--
		}
		if n := m.inbox.Take(); n != nil {
			m.notice = n
		}
		m.clampCursor()
		switch m.coord.State().Screen {
		case view.ScreenCampaignList, view.ScreenAdGroupList:
			m.inputs = nil
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		switch m.coord.State().Screen {
		case view.ScreenCampaignList:
			return m.updateCampaignList(msg)
		case view.ScreenAdGroupList:
			return m.updateAdGroupList(msg)
		case view.ScreenCampaignForm:
			return m.updateCampaignForm(msg)
		case view.ScreenAdGroupForm:
			return m.updateWizard(msg)
		}
	}
	return m, nil
}

func (m Model) updateCampaignList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	campaigns := m.coord.Campaigns()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.move(-1, len(campaigns))
	case "down", "j":
		m.move(1, len(campaigns))
	case "r":
		return m, m.run(m.coord.ShowCampaigns)
	case "n":
		m.coord.NewCampaign()
		m.loadCampaignInputs()
		return m, textinput.Blink
	}
	if m.cursor >= len(campaigns) {
		return m, nil
	}
	c := campaigns[m.cursor]
	if m.coord.Processing(c.ID) {
		return m, nil
	}
	switch msg.String() {
	case "enter":
		m.cursor = 0
		return m, m.run(func(ctx context.Context) error { return m.coord.ViewAdGroups(ctx, c) })
	case "p":
		return m, m.run(func(ctx context.Context) error { return m.coord.Publish(ctx, c) })
	case "d":
		return m, m.run(func(ctx context.Context) error { return m.coord.Pause(ctx, c) })
	}
	return m, nil
}

func (m Model) updateAdGroupList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	groups := m.coord.AdGroups()
	switch msg.String() {
	case "esc", "backspace":
		m.cursor = 0
		return m, m.run(m.coord.BackToCampaigns)
	case "up", "k":
		m.move(-1, len(groups))
	case "down", "j":
		m.move(1, len(groups))
	case "r":
		return m, m.run(m.coord.BackToAdGroups)
	case "n":
		if err := m.coord.NewAdGroup(); err == nil {
			m.loadWizardInputs()
			return m, textinput.Blink
		}
	}
	if m.cursor >= len(groups) {
		return m, nil
	}
	g := groups[m.cursor]
	if m.coord.Processing(g.ID) {
		return m, nil
	}
	switch msg.String() {
	case "e", "enter":
		if err := m.coord.EditAdGroup(g); err == nil {
			m.loadWizardInputs()
			return m, textinput.Blink
		}
	case " ", "t":
		return m, m.run(func(ctx context.Context) error { return m.coord.ToggleAdGroup(ctx, g) })
	case "x", "delete":
		m.confirm = &g
	}
	return m, nil
}

// updateConfirm answers the delete prompt. Only "y" deletes.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := *m.confirm
	m.confirm = nil
	if msg.String() != "y" {
		return m, nil
	}
	yes := lifecycle.ConfirmFunc(func(string) bool { return true })
	return m, m.run(func(ctx context.Context) error { return m.coord.DeleteAdGroup(ctx, g, yes) })
}

func (m Model) updateCampaignForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputs = nil
		return m, m.run(m.coord.ShowCampaigns)
	case tea.KeyTab, tea.KeyDown:
		m.focusInput(m.focus + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focusInput(m.focus - 1)
		return m, nil
	case tea.KeyEnter:
		if m.focus < len(m.inputs)-1 {
			m.focusInput(m.focus + 1)
			return m, nil
		}
		form, err := m.campaignForm()
		if err != nil {
			m.notice = &view.Notification{Kind: view.KindError, Message: err.Error()}
			return m, nil
		}
		return m, m.run(func(ctx context.Context) error { return m.coord.SubmitCampaign(ctx, form) })
	}
	return m.updateInput(msg)
}

func (m Model) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := m.coord.Wizard()
	if w == nil {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.inputs = nil
		return m, m.run(m.coord.BackToAdGroups)
	case tea.KeyTab, tea.KeyDown:
		m.focusInput(m.focus + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focusInput(m.focus - 1)
		return m, nil
	case tea.KeyPgDown, tea.KeyCtrlN:
		w.Next()
		m.loadWizardInputs()
		return m, nil
	case tea.KeyPgUp, tea.KeyCtrlP:
		w.Prev()
		m.loadWizardInputs()
		return m, nil
	case tea.KeyCtrlS:
		return m, m.run(m.coord.SubmitAdGroup)
	}

	next, cmd := m.updateInput(msg)
	nm := next.(Model)
	if nm.focus < len(nm.inputs) {
		field := w.Fields()[nm.focus]
		if err := w.Set(field, nm.inputs[nm.focus].Value()); err != nil {
			nm.notice = &view.Notification{Kind: view.KindError, Message: err.Error()}
		}
	}
	return nm, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) loadCampaignInputs() {
	m.inputs = make([]textinput.Model, len(campaignFields))
	for i, f := range campaignFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f
		if f == "start_date" || f == "end_date" {
			in.Placeholder = domain.DateLayout
		}
		m.inputs[i] = in
	}
	m.focusInput(0)
}

// loadWizardInputs rebuilds the inputs for the wizard's current page from
// the draft it holds.
func (m *Model) loadWizardInputs() {
	w := m.coord.Wizard()
	if w == nil {
		m.inputs = nil
		return
	}
	fields := w.Fields()
	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f
		in.SetValue(w.Field(f))
		m.inputs[i] = in
	}
	m.focusInput(0)
}

func (m *Model) focusInput(i int) {
	if len(m.inputs) == 0 {
		return
	}
	i = (i + len(m.inputs)) % len(m.inputs)
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	m.focus = i
}

func (m Model) campaignForm() (domain.CampaignFormData, error) {
	val := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	f := domain.CampaignFormData{Name: val(0), Objective: val(1)}

	budget, err := strconv.ParseFloat(val(2), 64)
	if err != nil {
		return f, &domain.ValidationError{Field: "daily_budget", Reason: "must be a number"}
	}
	f.DailyBudget = budget
	if f.StartDate, err = domain.ParseDate(val(3)); err != nil {
		return f, &domain.ValidationError{Field: "start_date", Reason: err.Error()}
	}
	if f.EndDate, err = domain.ParseDate(val(4)); err != nil {
		return f, &domain.ValidationError{Field: "end_date", Reason: err.Error()}
	}
	if s := val(5); s != "" {
		cpa, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return f, &domain.ValidationError{Field: "target_cpa", Reason: "must be a number"}
		}
		f.TargetCPA = &cpa
	}
	return f, nil
}

func (m *Model) move(delta, n int) {
	m.cursor += delta
	m.clampCursor()
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *Model) clampCursor() {
	n := len(m.coord.Campaigns())
	if m.coord.State().Screen == view.ScreenAdGroupList {
		n = len(m.coord.AdGroups())
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder
	st := m.coord.State()
	switch st.Screen {
	case view.ScreenCampaignList:
		b.WriteString(m.viewCampaigns())
	case view.ScreenCampaignForm:
		b.WriteString(m.viewForm("New campaign", campaignFields, "tab: next field  enter: submit  esc: cancel"))
	case view.ScreenAdGroupList:
		b.WriteString(m.viewAdGroups(st))
	case view.ScreenAdGroupForm:
		b.WriteString(m.viewWizard(st))
	}
	if m.confirm != nil {
		b.WriteString("\n" + m.styles.Warning.Render(
			fmt.Sprintf("Delete ad group %q? This cannot be undone. [y/N]", m.confirm.Name)) + "\n")
	}
	if m.notice != nil {
		style := m.styles.Success
		if m.notice.Kind == view.KindError {
			style = m.styles.Error
		}
		b.WriteString("\n" + style.Render(m.notice.Message) + "\n")
	}
	if m.busy > 0 {
		b.WriteString(m.styles.Muted.Render("working...") + "\n")
	}
	return b.String()
}

func (m Model) viewCampaigns() string {
	var b strings.Builder
	campaigns := m.coord.Campaigns()
	sum := domain.Summarize(campaigns)
	b.WriteString(m.styles.Title.Render("Campaigns") + "\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf(
		"total %d  active %d  daily budget %.2f  avg ROAS %.2f",
		sum.Total, sum.Active, sum.TotalDailyBudget, sum.AvgROAS)) + "\n\n")
	if len(campaigns) == 0 {
		b.WriteString(m.styles.Muted.Render("No campaigns yet. Press n to create one.") + "\n")
	}
	for i, c := range campaigns {
		labels := view.Labels(view.CampaignActions(c.Status))
		if m.coord.Processing(c.ID) {
			labels = []string{"processing..."}
		}
		line := fmt.Sprintf("%-30s %s  %10.2f/day  %s",
			c.Name,
			m.styles.campaignStatus(c.Status).Render(fmt.Sprintf("%-9s", c.Status)),
			c.DailyBudget,
			m.styles.Muted.Render(strings.Join(labels, " ")))
		b.WriteString(m.row(i, line))
	}
	b.WriteString("\n" + m.styles.Muted.Render("enter: ad groups  n: new  p: publish  d: disable  r: refresh  q: quit") + "\n")
	return b.String()
}

func (m Model) viewAdGroups(st view.State) string {
	var b strings.Builder
	groups := m.coord.AdGroups()
	enabled, paused := domain.AdGroupCounts(groups)
	b.WriteString(m.styles.Title.Render("Ad groups of "+st.Campaign.Name) + "\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("enabled %d  paused %d", enabled, paused)) + "\n\n")
	if len(groups) == 0 {
		b.WriteString(m.styles.Muted.Render("No ad groups yet. Press n to create one.") + "\n")
	}
	for i, g := range groups {
		labels := view.Labels(view.AdGroupActions(g.Status))
		if m.coord.Processing(g.ID) {
			labels = []string{"processing..."}
		}
		line := fmt.Sprintf("%-30s %s  %-30s %s",
			g.Name,
			m.styles.adGroupStatus(g.Status).Render(fmt.Sprintf("%-8s", g.Status)),
			m.styles.Muted.Render(g.Keywords),
			m.styles.Muted.Render(strings.Join(labels, " ")))
		b.WriteString(m.row(i, line))
	}
	b.WriteString("\n" + m.styles.Muted.Render("n: new  e: edit  t: pause/enable  x: delete  r: refresh  esc: back") + "\n")
	return b.String()
}

func (m Model) viewWizard(st view.State) string {
	w := m.coord.Wizard()
	if w == nil {
		return ""
	}
	title := "New ad group"
	if st.Editing() {
		title = "Edit " + st.AdGroup.Name
	}
	title = fmt.Sprintf("%s  (%d/%d %s)", title, int(w.Step())+1, w.Steps(), w.Step())
	out := m.viewForm(title, w.Fields(), "tab: next field  pgdn/pgup: page  ctrl+s: save  esc: cancel")
	for _, h := range w.Hints() {
		out += m.styles.Warning.Render(h.Error()) + "\n"
	}
	return out
}

func (m Model) viewForm(title string, fields []string, help string) string {
	rows := make([]string, 0, len(fields))
	for i, f := range fields {
		if i >= len(m.inputs) {
			break
		}
		rows = append(rows, m.styles.Label.Render(f)+m.inputs[i].View())
	}
	return m.styles.Title.Render(title) + "\n" +
		m.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n" +
		m.styles.Muted.Render(help) + "\n"
}

func (m Model) row(i int, line string) string {
	if i == m.cursor {
		return m.styles.Selected.Render("> ") + line + "\n"
	}
	return "  " + line + "\n"
}

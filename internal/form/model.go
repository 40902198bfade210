package form

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contacts/internal/contact"
)

// borderChrome is the number of cells consumed by left + right (or top +
// bottom) borders.
const borderChrome = 2

// fieldLabels are the placeholders of the add form, indexed by field.
var fieldLabels = [fieldCount]string{"Nome completo", "E-mail", "Telefone"}

// fieldNames maps contact.FieldError names back to form fields.
var fieldNames = map[string]int{"nome": fieldNome, "email": fieldEmail, "telefone": fieldTelefone}

// Model is the root Bubble Tea model for the contact form.
type Model struct {
	store         ContactStore
	focus         Focus
	inputs        [fieldCount]textinput.Model
	field         int
	edit          [fieldCount]textinput.Model
	editOrig      [fieldCount]string // stored values of the contact being edited
	editLoaded    [fieldCount]string // edit buffer contents right after loading
	editField     int
	cursor        int
	confirm       *confirmState
	confirmRemove bool
	status        string
	err           error
	width         int
	height        int
	help          help.Model

	formKeys    formKeys
	listKeys    listKeys
	editKeys    editKeys
	confirmKeys confirmKeys
}

// Option configures a Model.
type Option func(*Model)

// WithConfirmRemove asks for confirmation before removing a contact.
func WithConfirmRemove(on bool) Option {
	return func(m *Model) { m.confirmRemove = on }
}

// NewModel creates a form Model bound to store, with the add form focused.
func NewModel(store ContactStore, opts ...Option) Model {
	m := Model{
		store:       store,
		focus:       FocusForm,
		help:        help.New(),
		formKeys:    FormKeyMap(),
		listKeys:    ListKeyMap(),
		editKeys:    EditKeyMap(),
		confirmKeys: ConfirmKeyMap(),
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = fieldLabels[i]
		in.CharLimit = 120
		m.inputs[i] = in

		// No limit on edit buffers: stored values may be longer than
		// anything the add form accepts.
		ed := textinput.New()
		ed.Prompt = ""
		ed.CharLimit = 0
		m.edit[i] = ed
	}
	m.inputs[fieldNome].Focus()
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Mode reports the current interaction mode.
func (m Model) Mode() Mode {
	if m.confirm != nil {
		return ModeConfirm
	}
	if _, _, ok := m.editing(); ok {
		return ModeEdit
	}
	if m.focus == FocusList {
		return ModeList
	}
	return ModeForm
}

// editing returns the contact being edited, if the store points at one
// that exists.
func (m Model) editing() (contact.Contact, int, bool) {
	st := m.store.State()
	if !st.Editing() {
		return contact.Contact{}, -1, false
	}
	return st.Find(st.EditingID)
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeInputs()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input-internal messages.
	var cmd tea.Cmd
	switch m.Mode() {
	case ModeForm:
		m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	case ModeEdit:
		m.edit[m.editField], cmd = m.edit[m.editField].Update(msg)
	}
	return m, cmd
}

// handleKey processes key messages with global and mode-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, quitKey) {
		return m, tea.Quit
	}

	switch m.Mode() {
	case ModeConfirm:
		return m.updateConfirm(msg)
	case ModeEdit:
		c, _, _ := m.editing()
		return m.updateEdit(msg, c)
	case ModeList:
		return m.updateList(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Submit):
		return m.submitAdd()
	case key.Matches(msg, m.formKeys.Next):
		return m.focusField((m.field + 1) % fieldCount)
	case key.Matches(msg, m.formKeys.Prev):
		return m.focusField((m.field + fieldCount - 1) % fieldCount)
	case key.Matches(msg, m.formKeys.List):
		m.inputs[m.field].Blur()
		m.focus = FocusList
		m.err = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return m, cmd
}

// submitAdd validates the add form and appends the contact on success.
// The inputs are only cleared when the contact was added.
func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	nome, email, telefone := values(m.inputs)
	if err := contact.ValidateFields(nome, email, telefone); err != nil {
		m.err = err
		m.status = ""
		return m.focusField(invalidField(err, m.field))
	}

	c := m.store.Add(nome, email, telefone)
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.err = nil
	m.status = "Added " + c.Nome
	return m.focusField(fieldNome)
}

// focusField moves add-form focus to field i.
func (m Model) focusField(i int) (Model, tea.Cmd) {
	m.inputs[m.field].Blur()
	m.field = i
	cmd := m.inputs[i].Focus()
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.store.State().List
	n := len(list)

	switch {
	case key.Matches(msg, m.listKeys.Up):
		if n > 0 {
			m.cursor--
			if m.cursor < 0 {
				m.cursor = n - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.listKeys.Down):
		if n > 0 {
			m.cursor++
			if m.cursor >= n {
				m.cursor = 0
			}
		}
		return m, nil

	case key.Matches(msg, m.listKeys.Add):
		m.focus = FocusForm
		m.status = ""
		cmd := m.inputs[m.field].Focus()
		return m, cmd

	case key.Matches(msg, m.listKeys.Edit):
		if m.cursor >= n {
			return m, nil
		}
		return m.startEdit(list[m.cursor])

	case key.Matches(msg, m.listKeys.Remove):
		if m.cursor >= n {
			return m, nil
		}
		target := list[m.cursor]
		if m.confirmRemove {
			m.confirm = &confirmState{target: target}
			return m, nil
		}
		return m.removeContact(target), nil

	case key.Matches(msg, m.listKeys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

// startEdit puts the store into editing mode for c and loads its current
// values into the edit buffer.
func (m Model) startEdit(c contact.Contact) (tea.Model, tea.Cmd) {
	m.store.StartEditing(c.ID)
	m.editOrig = [fieldCount]string{c.Nome, c.Email, c.Telefone}
	for i := range m.edit {
		m.edit[i].SetValue(m.editOrig[i])
		m.editLoaded[i] = m.edit[i].Value()
		m.edit[i].CursorEnd()
		m.edit[i].Blur()
	}
	m.editField = fieldNome
	m.err = nil
	m.status = ""
	cmd := m.edit[fieldNome].Focus()
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg, c contact.Contact) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editKeys.Save):
		nome, email, telefone := m.editValues()
		if err := contact.ValidateFields(nome, email, telefone); err != nil {
			m.err = err
			return m.focusEditField(invalidField(err, m.editField))
		}
		m.store.Update(c.ID, nome, email, telefone)
		m.endEdit()
		m.status = "Saved " + nome
		return m, nil

	case key.Matches(msg, m.editKeys.Cancel):
		m.store.CancelEditing()
		m.endEdit()
		return m, nil

	case key.Matches(msg, m.editKeys.Next):
		return m.focusEditField((m.editField + 1) % fieldCount)

	case key.Matches(msg, m.editKeys.Prev):
		return m.focusEditField((m.editField + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	m.edit[m.editField], cmd = m.edit[m.editField].Update(msg)
	return m, cmd
}

func (m Model) focusEditField(i int) (Model, tea.Cmd) {
	m.edit[m.editField].Blur()
	m.editField = i
	cmd := m.edit[i].Focus()
	return m, cmd
}

// editValues returns the edit buffer values. Fields the user did not touch
// keep their stored value verbatim, since textinput rewrites tabs and
// newlines on load.
func (m Model) editValues() (nome, email, telefone string) {
	var out [fieldCount]string
	for i := range m.edit {
		if v := m.edit[i].Value(); v != m.editLoaded[i] {
			out[i] = strings.TrimSpace(v)
		} else {
			out[i] = m.editOrig[i]
		}
	}
	return out[fieldNome], out[fieldEmail], out[fieldTelefone]
}

// endEdit clears the local edit buffer after the store left editing mode.
func (m *Model) endEdit() {
	for i := range m.edit {
		m.edit[i].Blur()
		m.edit[i].Reset()
	}
	m.editOrig = [fieldCount]string{}
	m.editLoaded = [fieldCount]string{}
	m.editField = fieldNome
	m.err = nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmKeys.Yes):
		target := m.confirm.target
		m.confirm = nil
		return m.removeContact(target), nil
	case key.Matches(msg, m.confirmKeys.No):
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m Model) removeContact(c contact.Contact) Model {
	m.store.Remove(c.ID)
	m.status = "Removed " + c.Nome
	m.err = nil
	if n := len(m.store.State().List); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	return m
}

// resizeInputs fits the add form to the window and the edit inputs to the
// list columns.
func (m *Model) resizeInputs() {
	inner := m.width - borderChrome
	for i := range m.inputs {
		// Prompt ("> ") plus one cell for the cursor.
		m.inputs[i].Width = max(inner-3, 1)
	}
	widths := columnWidths(m.width)
	for i := range m.edit {
		m.edit[i].Width = max(widths[i]-1, 1)
	}
}

// columnWidths returns the list column widths for a window width.
func columnWidths(width int) [fieldCount]int {
	nome, email, telefone := ColumnWidths(width - borderChrome - len([]rune(CursorMarker)))
	return [fieldCount]int{nome, email, telefone}
}

// values returns the trimmed values of three inputs in field order.
func values(inputs [fieldCount]textinput.Model) (nome, email, telefone string) {
	return strings.TrimSpace(inputs[fieldNome].Value()),
		strings.TrimSpace(inputs[fieldEmail].Value()),
		strings.TrimSpace(inputs[fieldTelefone].Value())
}

// invalidField returns the form field named by a validation error, or
// fallback when the error does not name one.
func invalidField(err error, fallback int) int {
	var fe *contact.FieldError
	if errors.As(err, &fe) {
		if i, ok := fieldNames[fe.Field]; ok {
			return i
		}
	}
	return fallback
}

// errorMessage renders a validation error for the status line.
func errorMessage(err error) string {
	var fe *contact.FieldError
	if errors.As(err, &fe) {
		if i, ok := fieldNames[fe.Field]; ok {
			return "Fill in " + fieldLabels[i]
		}
	}
	return err.Error()
}

// View renders the form, the list and the help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	mode := m.Mode()
	st := m.store.State()

	formStyle, listStyle := UnfocusedBorder(), FocusedBorder()
	if mode == ModeForm {
		formStyle, listStyle = FocusedBorder(), UnfocusedBorder()
	}
	formStyle = formStyle.Width(m.width - borderChrome)
	listStyle = listStyle.Width(m.width - borderChrome)

	listContent := m.viewList(st, mode)
	if mode == ModeConfirm {
		listContent = m.confirm.View()
	}

	sections := []string{
		titleStyle.Render("Lista de Contatos"),
		formStyle.Render(m.viewForm()),
		listStyle.Render(listContent),
	}
	if line := m.statusLine(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.help.View(HelpBindings(mode)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewForm() string {
	rows := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		rows[i] = in.View()
	}
	return strings.Join(rows, "\n")
}

func (m Model) viewList(st contact.State, mode Mode) string {
	if len(st.List) == 0 {
		return mutedText.Render("No contacts yet. Press a to add one.")
	}

	widths := columnWidths(m.width)
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(mutedText.Render(row(widths, "Nome", "E-mail", "Telefone")))

	for i, c := range st.List {
		b.WriteByte('\n')
		if i == m.cursor && mode != ModeForm {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}

		if mode == ModeEdit && c.ID == st.EditingID {
			b.WriteString(m.edit[fieldNome].View() + " " +
				m.edit[fieldEmail].View() + " " +
				m.edit[fieldTelefone].View())
			continue
		}

		line := row(widths, c.Nome, c.Email, c.Telefone)
		if i == m.cursor && mode != ModeForm {
			line = selectedText.Render(line)
		}
		b.WriteString(line)
	}
	return b.String()
}

func row(widths [fieldCount]int, nome, email, telefone string) string {
	return cell(nome, widths[fieldNome]) + " " +
		cell(email, widths[fieldEmail]) + " " +
		cell(telefone, widths[fieldTelefone])
}

func (m Model) statusLine() string {
	if m.err != nil {
		return errorText.Render("Error: " + errorMessage(m.err))
	}
	if m.status != "" {
		return successText.Render(m.status)
	}
	return ""
}

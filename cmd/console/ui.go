package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/emberhollow/revenant/pkg/chat"
	"github.com/emberhollow/revenant/pkg/game"
)

const (
	AgentName       = "Narrator"
	PlaceHolderText = "What do you do?"
	historyFetch    = 40
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	view         *CharacterView
	history      []chat.Message
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool

	// lastNarrative is the most recent narrator reply, kept for
	// clipboard copy.
	lastNarrative string

	showQuitModal bool
	progressTick  int
}

type actionResponseMsg struct {
	action string
	res    *ActionResponse
	err    error
}

type restResponseMsg struct {
	res *RestResponse
	err error
}

type journalMsg struct {
	entries []game.JournalEntry
	err     error
}

type historyMsg struct {
	messages []chat.Message
	err      error
}

type progressTickMsg struct{}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")). // blood red
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, view *CharacterView, opening string) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 1000
	ta.SetWidth(50)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	ui := ConsoleUI{
		config:       cfg,
		client:       client,
		view:         view,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
	}
	if opening != "" {
		ui.history = append(ui.history, chat.Message{Role: chat.RoleAssistant, Content: opening})
		ui.lastNarrative = opening
	}
	return ui
}

func (m ConsoleUI) Init() tea.Cmd {
	if len(m.history) == 0 {
		return tea.Batch(m.loadHistory(), textarea.Blink)
	}
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.72) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.writeChatContent()
		m.metaViewport.SetContent(writeCharacterSheet(m.view))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil

		case tea.KeyCtrlR:
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.progressTick = 0
			m.history = append(m.history, chat.Message{Role: chat.RoleUser, Content: "(You settle down to rest.)"})
			m.writeChatContent()
			return m, tea.Batch(m.sendRestCmd(), progressTick())

		case tea.KeyCtrlY:
			if m.lastNarrative != "" {
				_ = clipboard.WriteAll(m.lastNarrative)
			}
			return m, nil

		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}

			m.textarea.Reset()
			m.loading = true
			m.progressTick = 0
			m.history = append(m.history, chat.Message{Role: chat.RoleUser, Content: input})
			m.writeChatContent()
			return m, tea.Batch(m.sendActionCmd(input), progressTick())
		}

	case actionResponseMsg:
		m.loading = false
		if msg.err != nil {
			// The action was rejected; drop its echo from the log.
			if n := len(m.history); n > 0 && m.history[n-1].Role == chat.RoleUser {
				m.history = m.history[:n-1]
			}
			m.appendError(msg.err)
		} else {
			m.applyAction(msg.res)
		}
		m.chatViewport.GotoBottom()
		return m, nil

	case restResponseMsg:
		m.loading = false
		if msg.err != nil {
			if n := len(m.history); n > 0 && m.history[n-1].Role == chat.RoleUser {
				m.history = m.history[:n-1]
			}
			m.appendError(msg.err)
		} else {
			m.applyRest(msg.res)
		}
		m.chatViewport.GotoBottom()
		return m, nil

	case journalMsg:
		if msg.err != nil {
			m.appendError(msg.err)
		} else {
			m.appendJournal(msg.entries)
		}
		m.chatViewport.GotoBottom()
		return m, nil

	case historyMsg:
		if msg.err == nil {
			m.history = msg.messages
			for i := len(m.history) - 1; i >= 0; i-- {
				if m.history[i].Role == chat.RoleAssistant {
					m.lastNarrative = m.history[i].Content
					break
				}
			}
			m.writeChatContent()
			m.chatViewport.GotoBottom()
		}
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeChatContent()
			return m, progressTick()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// applyAction folds an action response into the UI state.
func (m *ConsoleUI) applyAction(res *ActionResponse) {
	m.view = &CharacterView{Snapshot: res.Snapshot, Statuses: res.Statuses}
	m.history = append(m.history, chat.Message{Role: chat.RoleAssistant, Content: res.Narrative})
	m.lastNarrative = res.Narrative
	m.writeChatContent()
	m.metaViewport.SetContent(writeCharacterSheet(m.view))
}

// applyRest folds a rest response into the UI state. Ambushes carry a
// narrated encounter; quiet rests just report recovery.
func (m *ConsoleUI) applyRest(res *RestResponse) {
	m.view = &CharacterView{Snapshot: res.Snapshot, Statuses: res.Statuses}
	if res.Encounter != nil {
		m.history = append(m.history, chat.Message{Role: chat.RoleAssistant, Content: res.Encounter.Narrative})
		m.lastNarrative = res.Encounter.Narrative
	} else {
		summary := fmt.Sprintf("You rest. Stamina +%d, mana +%d.", res.Rest.StaminaRecovered, res.Rest.ManaRecovered)
		m.history = append(m.history, chat.Message{Role: chat.RoleAssistant, Content: summary})
	}
	m.writeChatContent()
	m.metaViewport.SetContent(writeCharacterSheet(m.view))
}

func (m *ConsoleUI) appendError(err error) {
	m.writeChatContent()
	content := m.chatViewport.View()
	m.chatViewport.SetContent(content + errorStyle.Render("Error: "+err.Error()) + "\n\n")
}

func (m *ConsoleUI) appendJournal(entries []game.JournalEntry) {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Journal") + "\n")
	if len(entries) == 0 {
		sb.WriteString("No entries yet. Deeds worth remembering will appear here.\n")
	}
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%d. %s\n", e.EntryNumber, e.Title))
		sb.WriteString(wordwrap.String(e.Content, m.chatViewport.Width-8) + "\n\n")
	}
	content := m.chatViewport.View()
	m.chatViewport.SetContent(content + sb.String())
}

// writeChatContent rebuilds the chat panel from history at the current
// viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6

	var content strings.Builder
	content.WriteString(titleStyle.Render("REVENANT") + "\n\n")
	content.WriteString("You came back for a reason. Type your actions below.\n")
	content.WriteString(promptStyle.Render("Ctrl+R rest · Ctrl+Y copy last narration · /help commands") + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(chatWidth-6, 10))) + "\n\n")

	for _, msg := range m.history {
		switch msg.Role {
		case chat.RoleAssistant, chat.RoleSystem:
			content.WriteString(formatNarration(msg.Content, chatWidth) + "\n\n")
		case chat.RoleUser:
			content.WriteString(userStyle.Render("You: ") + wordwrap.String(msg.Content, chatWidth-6) + "\n\n")
		}
	}

	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

// formatNarration wraps narrator prose and prefixes it.
func formatNarration(text string, width int) string {
	prefix := AgentName + ": "
	wrapped := wordwrap.String(text, max(width-len(prefix), 20))
	return narratorStyle.Render(prefix) + wrapped
}

// writeCharacterSheet renders the side panel.
func writeCharacterSheet(view *CharacterView) string {
	if view == nil || view.Snapshot == nil {
		return "Loading..."
	}
	c := view.Snapshot.Character

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(strings.ToUpper(c.Name)) + "\n")
	if class := game.ClassByID(c.ClassID); class != nil {
		sb.WriteString(fmt.Sprintf("Level %d %s\n\n", c.Level, class.Name))
	} else {
		sb.WriteString(fmt.Sprintf("Level %d\n\n", c.Level))
	}

	sb.WriteString(fmt.Sprintf("HP      %d/%d\n", c.HP, c.MaxHP))
	sb.WriteString(fmt.Sprintf("Stamina %d/%d\n", c.Stamina, c.MaxStamina))
	if c.MaxMana > 0 {
		sb.WriteString(fmt.Sprintf("Mana    %d/%d\n", c.Mana, c.MaxMana))
	}
	sb.WriteString(fmt.Sprintf("Gold    %d\n", c.Gold))
	sb.WriteString(fmt.Sprintf("XP      %d/%d\n\n", c.XP, game.XPForNextLevel(c.Level)))

	if z, ok := game.ZoneByID(c.CurrentZone); ok {
		sb.WriteString("Zone: " + z.Name + "\n")
	}
	sb.WriteString("Phase: " + c.StoryPhase + "\n")
	if c.StatPoints > 0 {
		sb.WriteString(statusStyle.Render(fmt.Sprintf("%d stat points to spend", c.StatPoints)) + "\n")
	}
	sb.WriteString("\n")

	if len(view.Statuses) > 0 {
		sb.WriteString("Conditions:\n")
		for _, s := range view.Statuses {
			sb.WriteString(statusStyle.Render("• "+s.Label) + "\n")
		}
		sb.WriteString("\n")
	}

	if len(view.Snapshot.Inventory) > 0 {
		sb.WriteString("Inventory:\n")
		for _, it := range view.Snapshot.Inventory {
			sb.WriteString(fmt.Sprintf("• %s x%d\n", it.Name, it.Quantity))
		}
		sb.WriteString("\n")
	}

	if len(view.Snapshot.Companions) > 0 {
		sb.WriteString("Party:\n")
		for _, comp := range view.Snapshot.Companions {
			sb.WriteString(fmt.Sprintf("• %s (trust %d)\n", comp.Name, comp.Trust))
		}
		sb.WriteString("\n")
	}

	if len(c.BetrayersDefeated) > 0 {
		sb.WriteString("Betrayers slain:\n")
		for _, b := range c.BetrayersDefeated {
			sb.WriteString("• " + b + "\n")
		}
	}

	return sb.String()
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(input))
	m.textarea.Reset()

	switch cmd {
	case "/help":
		helpText := `
Commands:
• /help - Show this help
• /journal - Show your journal
• /rest - Rest in the current zone
• Ctrl+R - Rest (same as /rest)
• Ctrl+Y - Copy last narration to clipboard
• Ctrl+C - Quit

How to play:
• Type actions and press Enter
• Talking and looking are free; everything else costs stamina
• Rest to recover, but dangerous zones invite ambushes
`
		content := m.chatViewport.View()
		m.chatViewport.SetContent(content + titleStyle.Render("Help:") + helpText + "\n")
		m.chatViewport.GotoBottom()
		return m, nil

	case "/journal":
		return m, m.loadJournal()

	case "/rest":
		m.loading = true
		m.progressTick = 0
		m.history = append(m.history, chat.Message{Role: chat.RoleUser, Content: "(You settle down to rest.)"})
		m.writeChatContent()
		return m, tea.Batch(m.sendRestCmd(), progressTick())
	}

	return m, nil
}

func (m ConsoleUI) sendActionCmd(action string) tea.Cmd {
	return func() tea.Msg {
		res, err := sendAction(m.client, m.config.APIBaseURL, m.view.Snapshot.Character.ID, action)
		return actionResponseMsg{action: action, res: res, err: err}
	}
}

func (m ConsoleUI) sendRestCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := sendRest(m.client, m.config.APIBaseURL, m.view.Snapshot.Character.ID)
		return restResponseMsg{res: res, err: err}
	}
}

func (m ConsoleUI) loadJournal() tea.Cmd {
	return func() tea.Msg {
		entries, err := getJournal(m.client, m.config.APIBaseURL, m.view.Snapshot.Character.ID)
		return journalMsg{entries: entries, err: err}
	}
}

func (m ConsoleUI) loadHistory() tea.Cmd {
	return func() tea.Msg {
		msgs, err := getMessages(m.client, m.config.APIBaseURL, m.view.Snapshot.Character.ID, historyFetch)
		return historyMsg{messages: msgs, err: err}
	}
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave the story?"))
	content.WriteString("\n\n")
	content.WriteString("Your character is saved. The grudge keeps.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.72) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 10))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}

// renderProgressBar animates a bar while the narrator thinks.
func (m ConsoleUI) renderProgressBar() string {
	usable := m.chatViewport.Width - 6
	if usable <= 0 {
		usable = 30
	}
	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		switch {
		case i < filled:
			bar.WriteString("█")
		case i == filled && frame%4 < 2:
			bar.WriteString("▓")
		default:
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}

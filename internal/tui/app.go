// internal/tui/app.go
//
// The narration TUI. It follows The Elm Architecture like the rest of the
// bubbletea ecosystem:
//
// 1. Model: the narration state (script position, pending reading)
// 2. Update: advances on tick/key/reading messages
// 3. View: renders the revealed narration plus a status line
//
// The casting is finished before the program starts; the model only
// paces its replay. The interpretation request runs concurrently and its
// outcome arrives over a channel, so a slow model never stalls the
// narration and a fast one quietly waits for the story to end.

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const typeSpeed = 15 * time.Millisecond

// Reading is the outcome of the interpretation request.
type Reading struct {
	Text string
	Err  error
}

type phase int

const (
	phaseNarrating phase = iota
	phaseWaiting
	phaseDone
)

type tickMsg struct{}

type readingMsg Reading

// Model is the bubbletea model for one narrated casting.
type Model struct {
	frames    []Frame
	idx       int
	revealed  int // runes shown of the current typed frame
	done      []string
	phase     phase
	spin      spinner.Model
	readingCh <-chan Reading
	reading   *Reading
	width     int
	height    int
}

// NewModel builds the model. readingCh may be nil when there is nothing
// to interpret (cast-only runs); the program then quits after narration.
func NewModel(frames []Frame, readingCh <-chan Reading) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	return Model{
		frames:    frames,
		spin:      spin,
		readingCh: readingCh,
	}
}

// Run narrates the script and blocks until the user quits.
func Run(frames []Frame, readingCh <-chan Reading) error {
	_, err := tea.NewProgram(NewModel(frames, readingCh)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, tick(0)}
	if m.readingCh != nil {
		cmds = append(cmds, m.waitForReading())
	}
	return tea.Batch(cmds...)
}

func tick(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m Model) waitForReading() tea.Cmd {
	ch := m.readingCh
	return func() tea.Msg {
		return readingMsg(<-ch)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter", " ":
			if m.phase == phaseNarrating {
				return m.skipNarration()
			}
			if m.phase == phaseDone {
				return m, tea.Quit
			}
		}
		return m, nil

	case tickMsg:
		return m.advance()

	case readingMsg:
		reading := Reading(msg)
		m.reading = &reading
		if m.phase == phaseWaiting {
			m.phase = phaseDone
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// advance reveals the next rune or frame, scheduling the following tick.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.phase != phaseNarrating {
		return m, nil
	}
	if m.idx >= len(m.frames) {
		return m.finishNarration()
	}

	frame := m.frames[m.idx]
	text := frame.Text
	if frame.Typed {
		runes := []rune(text)
		if m.revealed < len(runes) {
			m.revealed++
			return m, tick(typeSpeed)
		}
		text = styleStep.Render(text)
	}

	m.done = append(m.done, text)
	m.idx++
	m.revealed = 0
	if m.idx >= len(m.frames) {
		return m.finishNarration()
	}
	return m, tick(frame.Pause)
}

func (m Model) finishNarration() (tea.Model, tea.Cmd) {
	if m.readingCh == nil {
		m.phase = phaseDone
		return m, tea.Quit
	}
	if m.reading != nil {
		m.phase = phaseDone
		return m, nil
	}
	m.phase = phaseWaiting
	return m, nil
}

// skipNarration drops the pacing and shows the remaining frames at once.
func (m Model) skipNarration() (tea.Model, tea.Cmd) {
	for ; m.idx < len(m.frames); m.idx++ {
		text := m.frames[m.idx].Text
		if m.frames[m.idx].Typed {
			text = styleStep.Render(text)
		}
		m.done = append(m.done, text)
	}
	m.revealed = 0
	return m.finishNarration()
}

func (m Model) View() string {
	var b strings.Builder
	for _, line := range m.visibleLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	switch m.phase {
	case phaseNarrating:
		if m.idx < len(m.frames) && m.frames[m.idx].Typed && m.revealed > 0 {
			runes := []rune(m.frames[m.idx].Text)
			b.WriteString(styleStep.Render(string(runes[:m.revealed])))
			b.WriteByte('\n')
		}
	case phaseWaiting:
		b.WriteByte('\n')
		b.WriteString(m.spin.View())
		b.WriteString(styleStatus.Render(" 正在推演卦辞，请稍候……"))
		b.WriteByte('\n')
	case phaseDone:
		if m.reading != nil {
			b.WriteByte('\n')
			b.WriteString(rule())
			b.WriteByte('\n')
			if m.reading.Err != nil {
				b.WriteString(styleVerdict.Render("解卦失败：" + m.reading.Err.Error()))
			} else {
				b.WriteString(styleReading.Render(m.reading.Text))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		b.WriteString(styleStatus.Render("按 q 退出"))
		b.WriteByte('\n')
	}
	return b.String()
}

// visibleLines keeps the tail of the narration on screen once it grows
// past the terminal height.
func (m Model) visibleLines() []string {
	if m.height <= 0 {
		return m.done
	}
	budget := m.height - 6
	if budget < 1 {
		budget = 1
	}
	if len(m.done) <= budget {
		return m.done
	}
	return m.done[len(m.done)-budget:]
}

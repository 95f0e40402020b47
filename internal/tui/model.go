// Package tui implements the interactive terminal playground: a Fibonacci
// panel computing F(n) with live progress and an abbreviation panel that
// re-evaluates on every keystroke.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/algodemo/internal/abbreviation"
	"github.com/agbru/algodemo/internal/config"
	apperrors "github.com/agbru/algodemo/internal/errors"
	"github.com/agbru/algodemo/internal/fibonacci"
	"github.com/agbru/algodemo/internal/format"
	"github.com/agbru/algodemo/internal/orchestration"
)

// Layout constants for the playground.
const (
	inputWidth       = 40
	abbrCharLimit    = 256
	progressBarWidth = 30
	displayEdges     = 25
	defaultTimeout   = time.Minute
)

type field int

const (
	fieldN field = iota
	fieldA
	fieldB
	numFields
)

type fibOutcome struct {
	n        int64
	algo     string
	value    string
	bits     int
	duration time.Duration
	err      error
}

type abbrOutcome struct {
	possible bool
	plan     []abbreviation.Step
}

// Model is the root bubbletea model of the playground.
type Model struct {
	keymap KeyMap
	help   help.Model
	inputs [numFields]textinput.Model
	focus  field

	factory fibonacci.CalculatorFactory
	algos   []string
	algoIdx int
	timeout time.Duration

	parentCtx  context.Context
	cancel     context.CancelFunc
	ref        *programRef
	generation uint64
	running    bool
	progress   float64
	eta        time.Duration
	fib        *fibOutcome
	abbr       abbrOutcome

	version  string
	width    int
	exitCode int
}

// NewModel creates the playground model, prefilled from cfg.
func NewModel(parentCtx context.Context, factory fibonacci.CalculatorFactory, cfg config.AppConfig, version string) Model {
	var inputs [numFields]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Width = inputWidth
		ti.CharLimit = abbrCharLimit
		inputs[i] = ti
	}
	inputs[fieldN].Prompt = "n ▸ "
	inputs[fieldN].Placeholder = "index, e.g. 1000"
	inputs[fieldN].CharLimit = 19
	inputs[fieldA].Prompt = "a ▸ "
	inputs[fieldA].Placeholder = "source, e.g. daBcd"
	inputs[fieldB].Prompt = "b ▸ "
	inputs[fieldB].Placeholder = "target, e.g. ABC"

	if cfg.N > 0 {
		inputs[fieldN].SetValue(strconv.FormatInt(cfg.N, 10))
	}
	inputs[fieldA].SetValue(cfg.A)
	inputs[fieldB].SetValue(cfg.B)
	inputs[fieldN].Focus()

	algos := factory.List()
	algoIdx := 0
	for i, name := range algos {
		if name == cfg.Algo {
			algoIdx = i
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	m := Model{
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		inputs:    inputs,
		factory:   factory,
		algos:     algos,
		algoIdx:   algoIdx,
		timeout:   timeout,
		parentCtx: parentCtx,
		ref:       &programRef{},
		version:   version,
		exitCode:  apperrors.ExitSuccess,
	}
	m.evalAbbreviation()
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, watchContextCmd(m.parentCtx))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case ProgressMsg:
		if m.running && msg.Generation == m.generation {
			m.progress = msg.Value
			m.eta = msg.ETA
		}
		return m, nil

	case FibResultMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a superseded computation
		}
		m.stopComputation()
		out := &fibOutcome{n: msg.N, algo: msg.Result.Name, duration: msg.Result.Duration, err: msg.Result.Err}
		if msg.Result.Err == nil && msg.Result.Result != nil {
			out.value = msg.Result.Result.String()
			out.bits = msg.Result.Result.BitLen()
		}
		m.fib = out
		return m, nil

	case ContextCancelledMsg:
		m.stopComputation()
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit) && (msg.String() != "q" || m.focus == fieldN):
		m.stopComputation()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Next):
		return m, m.setFocus((m.focus + 1) % numFields)

	case key.Matches(msg, m.keymap.Prev):
		return m, m.setFocus((m.focus + numFields - 1) % numFields)

	case key.Matches(msg, m.keymap.Cancel):
		m.stopComputation()
		return m, nil

	case key.Matches(msg, m.keymap.Algo):
		if len(m.algos) > 0 {
			m.algoIdx = (m.algoIdx + 1) % len(m.algos)
		}
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		if m.focus == fieldN {
			return m.startComputation()
		}
		return m, m.setFocus((m.focus + 1) % numFields)
	}

	if m.focus == fieldN && msg.Type == tea.KeyRunes && !isIndexInput(msg.Runes) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.focus != fieldN {
		m.evalAbbreviation()
	}
	return m, cmd
}

func isIndexInput(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[f].Focus()
}

func (m *Model) evalAbbreviation() {
	table := abbreviation.NewTable(m.inputs[fieldA].Value(), m.inputs[fieldB].Value())
	plan, _ := table.Plan()
	m.abbr = abbrOutcome{possible: table.Possible(), plan: plan}
}

func (m Model) currentCalculator() (fibonacci.Calculator, error) {
	if len(m.algos) == 0 {
		return nil, errors.New("no algorithm registered")
	}
	return m.factory.Get(m.algos[m.algoIdx])
}

func (m Model) startComputation() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.inputs[fieldN].Value())
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		m.fib = &fibOutcome{err: fmt.Errorf("invalid n: %q", raw)}
		return m, nil
	}
	calc, err := m.currentCalculator()
	if err != nil {
		m.fib = &fibOutcome{n: n, err: err}
		return m, nil
	}

	m.stopComputation()
	m.generation++
	ctx, cancel := context.WithTimeout(m.parentCtx, m.timeout)
	m.cancel = cancel
	m.running = true
	m.progress = 0
	m.eta = 0
	return m, computeCmd(ctx, m.ref, calc, n, m.generation)
}

// stopComputation cancels the running computation, if any. Its result
// still arrives and reports the cancellation.
func (m *Model) stopComputation() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.running = false
}

// View renders the playground.
func (m Model) View() string {
	header := titleStyle.Render("algodemo playground") + " " + versionStyle.Render(m.version)

	fibPanel := m.panel(m.focus == fieldN, "Fibonacci", m.fibView())
	abbrPanel := m.panel(m.focus != fieldN, "Abbreviation", m.abbrView())

	return lipgloss.JoinVertical(lipgloss.Left, header, fibPanel, abbrPanel, m.help.View(m.keymap))
}

func (m Model) panel(focused bool, title, body string) string {
	style := panelStyle
	if focused {
		style = focusedPanelStyle
	}
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	return style.Render(titleStyle.Render(title) + "\n" + body)
}

func (m Model) fibView() string {
	var sb strings.Builder
	algo := "-"
	if calc, err := m.currentCalculator(); err == nil {
		algo = calc.Name()
	}
	sb.WriteString(m.inputs[fieldN].View())
	sb.WriteString("\n" + labelStyle.Render("algorithm: ") + valueStyle.Render(algo) + "\n")

	switch {
	case m.running:
		sb.WriteString(format.FormatProgressBarWithETA(m.progress, m.eta, progressBarWidth))
	case m.fib == nil:
		sb.WriteString(labelStyle.Render("press enter to compute"))
	case m.fib.err != nil:
		sb.WriteString(errorStyle.Render(describeError(m.fib.err)))
	default:
		sb.WriteString(fmt.Sprintf("F(%d) = %s\n", m.fib.n, valueStyle.Render(truncateDigits(m.fib.value))))
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%d digits, %d bits, %s with %s",
			len(m.fib.value), m.fib.bits, format.FormatExecutionDuration(m.fib.duration), m.fib.algo)))
	}
	return sb.String()
}

func describeError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return err.Error()
	}
}

func truncateDigits(s string) string {
	if len(s) <= 2*displayEdges+3 {
		return s
	}
	return s[:displayEdges] + "..." + s[len(s)-displayEdges:]
}

func (m Model) abbrView() string {
	var sb strings.Builder
	sb.WriteString(m.inputs[fieldA].View() + "\n")
	sb.WriteString(m.inputs[fieldB].View() + "\n")
	if !m.abbr.possible {
		sb.WriteString(errorStyle.Render("✗ not an abbreviation"))
		return sb.String()
	}
	sb.WriteString(successStyle.Render("✓ abbreviation possible"))
	if len(m.abbr.plan) > 0 {
		sb.WriteString("  " + renderPlan(m.abbr.plan))
	}
	return sb.String()
}

// renderPlan shows a with deleted runes struck through and capitalized
// runes underlined.
func renderPlan(plan []abbreviation.Step) string {
	var sb strings.Builder
	for _, st := range plan {
		switch st.Op {
		case abbreviation.OpDelete:
			sb.WriteString(deletedStyle.Render(string(st.Rune)))
		case abbreviation.OpCapitalize:
			sb.WriteString(capitalizedStyle.Render(string(unicode.ToUpper(st.Rune))))
		default:
			sb.WriteString(keptStyle.Render(string(st.Rune)))
		}
	}
	return sb.String()
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, factory fibonacci.CalculatorFactory, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, factory, cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		m.stopComputation()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// computeCmd runs one calculator through the orchestration layer so
// progress flows to the TUI via the bridge.
func computeCmd(ctx context.Context, ref *programRef, calc fibonacci.Calculator, n int64, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref, generation: gen}
		results := orchestration.ExecuteCalculations(ctx, []fibonacci.Calculator{calc}, n, reporter, io.Discard)
		return FibResultMsg{Generation: gen, N: n, Result: results[0]}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}

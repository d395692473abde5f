// Command typewriter is an interactive terminal demo of the Craft text
// reveal engine. It animates a piece of text with one of the built-in
// presets (or a preset loaded from a YAML file) and renders a
// spring-smoothed progress bar underneath.
//
// Usage:
//
//	typewriter [flags] [text]
//
// Flags:
//
//	-mode     reveal granularity: character, word, or sentence
//	-preset   preset name (typewriter, teleprompter, subtitles, terminal)
//	-presets  path to a YAML file of extra presets
//	-list     list available presets and exit
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/home-lang/craft/pkg/animation"
	"github.com/home-lang/craft/pkg/textreveal"
)

const (
	frameInterval = 33 * time.Millisecond
	barWidth      = 40

	defaultText = "The quick brown fox jumps over the lazy dog. " +
		"Pack my box with five dozen liquor jugs! " +
		"How vexingly quick daft zebras jump?"
)

var (
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8F8F2")).Width(72)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	trackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#44475A"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).MarginTop(1)
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type revealModel struct {
	reveal     *textreveal.TextAnimation
	controller *animation.AnimationController
	bar        *animation.SpringAnimation
	quitting   bool
}

func newRevealModel(text string, mode textreveal.RevealMode, cfg textreveal.Config) revealModel {
	m := revealModel{
		reveal:     textreveal.New(text, mode, cfg),
		controller: animation.NewAnimationController(),
		// The bar chases the reveal progress so it glides instead of
		// stepping unit by unit.
		bar: animation.GentleSpring(0, 0),
	}
	m.controller.AddSpring(m.bar)
	return m
}

func (m revealModel) Init() tea.Cmd {
	m.reveal.Start()
	m.bar.Start()
	return tickCmd()
}

func (m revealModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ":
			switch m.reveal.State() {
			case animation.StateRunning:
				m.reveal.Pause()
				m.controller.PauseAll()
			case animation.StatePaused:
				m.reveal.Unpause()
				m.controller.UnpauseAll()
			}
			return m, nil
		case "s":
			m.reveal.SkipToEnd()
			return m, nil
		case "r":
			m.reveal.Start()
			m.bar.Reset()
			m.bar.Start()
			return m, nil
		}

	case tickMsg:
		m.reveal.Update()
		m.bar.SetTarget(m.reveal.Progress())
		m.controller.Update()
		return m, tickCmd()
	}

	return m, nil
}

func (m revealModel) View() string {
	if m.quitting {
		return ""
	}

	filled := int(m.bar.Position() * barWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := barStyle.Render(strings.Repeat("█", filled)) +
		trackStyle.Render(strings.Repeat("░", barWidth-filled))

	status := fmt.Sprintf("%s · %s · %3.0f%%",
		m.reveal.Mode(), m.reveal.State(), m.reveal.Progress()*100)

	return lipgloss.JoinVertical(lipgloss.Left,
		textStyle.Render(m.reveal.RevealedTextWithCursor()),
		"",
		bar,
		statusStyle.Render(status),
		helpStyle.Render("space pause · s skip · r restart · q quit"),
	)
}

func parseMode(s string) (textreveal.RevealMode, error) {
	switch s {
	case "character", "char":
		return textreveal.RevealCharacter, nil
	case "word":
		return textreveal.RevealWord, nil
	case "sentence":
		return textreveal.RevealSentence, nil
	default:
		return 0, fmt.Errorf("unknown reveal mode %q (want character, word, or sentence)", s)
	}
}

func main() {
	modeFlag := flag.String("mode", "character", "reveal granularity: character, word, or sentence")
	presetFlag := flag.String("preset", "typewriter", "preset name")
	presetsFile := flag.String("presets", "", "path to a YAML file of extra presets")
	list := flag.Bool("list", false, "list available presets and exit")
	flag.Parse()

	if err := run(*modeFlag, *presetFlag, *presetsFile, *list, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(modeName, presetName, presetsFile string, list bool, args []string) error {
	presets := textreveal.Presets()
	if presetsFile != "" {
		var err error
		presets, err = textreveal.LoadPresets(presetsFile)
		if err != nil {
			return err
		}
	}

	if list {
		names := make([]string, 0, len(presets))
		for name := range presets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	cfg, ok := presets[presetName]
	if !ok {
		return fmt.Errorf("unknown preset %q (use -list to see available presets)", presetName)
	}

	mode, err := parseMode(modeName)
	if err != nil {
		return err
	}

	text := defaultText
	if len(args) > 0 {
		text = strings.Join(args, " ")
	}

	p := tea.NewProgram(newRevealModel(text, mode, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running bubble tea: %w", err)
	}
	return nil
}

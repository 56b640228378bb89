package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mikepea/abhyas/pkg/abhyas/menu"
)

const defaultSearchSize = 10

// Prompter reads menu choices from the terminal
type Prompter struct {
	// Stdin and Stdout default to the process streams when nil
	Stdin  io.ReadCloser
	Stdout io.WriteCloser

	// SearchSize is the number of links visible while searching
	SearchSize int
}

// NewPrompter creates a prompter on the process terminal
func NewPrompter() *Prompter {
	return &Prompter{SearchSize: defaultSearchSize}
}

// Choose shows options as a select list
func (p *Prompter) Choose(label string, options []string) (int, error) {
	sel := promptui.Select{
		Label:        label,
		Items:        options,
		Size:         len(options),
		HideSelected: true,
		Stdin:        p.Stdin,
		Stdout:       p.Stdout,
	}

	i, _, err := sel.Run()
	return i, translate(err)
}

// Search shows items in a select list that starts in search mode.
// Typing filters items by case-insensitive substring.
func (p *Prompter) Search(label string, items []string) (int, error) {
	size := p.SearchSize
	if size <= 0 {
		size = defaultSearchSize
	}

	sel := promptui.Select{
		Label:             label,
		Items:             items,
		Size:              size,
		Searcher:          containsFold(items),
		StartInSearchMode: true,
		Stdin:             p.Stdin,
		Stdout:            p.Stdout,
	}

	i, _, err := sel.Run()
	if err != nil {
		return 0, translate(err)
	}
	return i, nil
}

// Input reads one line, re-prompting until validate accepts it
func (p *Prompter) Input(label, help string, validate func(string) error) (string, error) {
	if help != "" {
		label = fmt.Sprintf("%s (%s)", label, help)
	}

	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}

	value, err := prompt.Run()
	if err != nil {
		return "", translate(err)
	}
	return value, nil
}

func containsFold(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		needle := strings.ToLower(strings.TrimSpace(input))
		return strings.Contains(strings.ToLower(items[index]), needle)
	}
}

// translate maps promptui's abort signals to the menu's: Ctrl-C interrupts,
// Ctrl-D cancels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, promptui.ErrInterrupt):
		return menu.ErrInterrupted
	case errors.Is(err, promptui.ErrEOF), errors.Is(err, promptui.ErrAbort):
		return menu.ErrCancelled
	default:
		return fmt.Errorf("prompt: %w", err)
	}
}

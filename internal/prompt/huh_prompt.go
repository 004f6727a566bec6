package prompt

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhPrompter implements Prompter with charmbracelet/huh forms.
type HuhPrompter struct{}

// NewHuhPrompter creates a new huh-based prompter.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) Select(title string, options []string) (int, error) {
	result := -1

	// Labels may repeat (duplicate saved colors), so select by position
	opts := make([]huh.Option[int], len(options))
	for i, opt := range options {
		opts[i] = huh.NewOption(opt, i)
	}

	err := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&result).
		Run()

	return result, err
}

func (p *HuhPrompter) Input(title, placeholder string, validate Validator) (string, error) {
	var result string

	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&result)
	if validate != nil {
		input = input.Validate(func(s string) error {
			return validate(strings.TrimSpace(s))
		})
	}

	err := input.Run()
	return strings.TrimSpace(result), err
}

func (p *HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	result := defaultValue

	err := huh.NewConfirm().
		Title(title).
		Value(&result).
		Run()

	return result, err
}

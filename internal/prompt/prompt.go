package prompt

import "errors"

// ErrNonInteractive is returned when prompting in non-interactive mode.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode (pass the value as an argument)")

// Validator checks a typed value before the prompt accepts it.
// A nil Validator accepts anything.
type Validator func(string) error

// Prompter asks the user for values the command line left out.
type Prompter interface {
	// Select shows options and returns the position of the chosen one.
	Select(title string, options []string) (int, error)

	// Input asks for a line of text, re-asking until validate passes.
	Input(title, placeholder string, validate Validator) (string, error)

	// Confirm asks a yes/no question.
	Confirm(title string, defaultValue bool) (bool, error)
}

// NoopPrompter fails every prompt. Used with -I.
type NoopPrompter struct{}

func (p *NoopPrompter) Select(title string, options []string) (int, error) {
	return -1, ErrNonInteractive
}

func (p *NoopPrompter) Input(title, placeholder string, validate Validator) (string, error) {
	return "", ErrNonInteractive
}

func (p *NoopPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	return false, ErrNonInteractive
}

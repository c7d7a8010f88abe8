package restdoc

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Prompter asks the user for input.
type Prompter interface {
	// Select asks the user to pick one of options.
	Select(title string, options []string) (string, error)

	// Input asks the user for a free text value.
	Input(title, description string) (string, error)
}

// FormPrompter is a [Prompter] backed by interactive terminal forms.
type FormPrompter struct{}

// Select implements [Prompter] for [FormPrompter].
func (f FormPrompter) Select(title string, options []string) (string, error) {
	var choice string

	err := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&choice).
		Run()
	if err != nil {
		return "", fmt.Errorf("could not get a choice for %q: %w", title, err)
	}

	return choice, nil
}

// Input implements [Prompter] for [FormPrompter].
func (f FormPrompter) Input(title, description string) (string, error) {
	var value string

	err := huh.NewInput().
		Title(title).
		Description(description).
		Value(&value).
		Run()
	if err != nil {
		return "", fmt.Errorf("could not get a value for %q: %w", title, err)
	}

	return value, nil
}

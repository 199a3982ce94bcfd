package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a text input with an optional default shown
// as placeholder and an optional validator.
func PromptInput(message, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}
	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	// Enter on an empty field accepts the placeholder default.
	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}
	return inputVal, nil
}

// PromptAmount prompts for an amount; validation happens downstream so
// a bad value surfaces as the flow's transient error, not an inline
// form error.
func PromptAmount(message, helpText, defaultValue string) (string, error) {
	var amount string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&amount)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if err := input.Run(); err != nil {
		return "", err
	}
	if amount == "" && defaultValue != "" {
		return defaultValue, nil
	}
	return amount, nil
}

// PromptConfirm prompts for a yes/no confirmation.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptSelect prompts for a selection from display strings, returning
// the chosen value.
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption
	if selected == "" && len(options) > 0 {
		selected = options[0]
	}

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

package ui

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
)

// PageHeader prints the title block every page starts with.
func PageHeader(title, subtitle string) {
	pterm.DefaultSection.Println(title)
	pterm.FgGray.Println(subtitle)
}

// IconOption keeps survey prompts visually in line with the huh forms
// by replacing the default "?" icon.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}

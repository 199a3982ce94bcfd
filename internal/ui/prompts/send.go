package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/dgarcia1724/prestige-finance/internal/model"
)

// PromptFriendSearch asks for an optional name fragment; enter on an
// empty field lists everyone.
func PromptFriendSearch() (string, error) {
	var query string

	err := huh.NewInput().
		Title("Search friends by name").
		Description("Press Enter to list everyone").
		Value(&query).
		Run()

	return query, err
}

// PromptFriendSelection picks a recipient from the given friends.
func PromptFriendSelection(friends []model.Friend) (model.Friend, error) {
	if len(friends) == 0 {
		return model.Friend{}, fmt.Errorf("no friends to choose from")
	}

	var opts []huh.Option[string]
	byID := make(map[string]model.Friend, len(friends))
	for _, f := range friends {
		label := fmt.Sprintf("%s (%s)", f.Name, f.UserID)
		opts = append(opts, huh.NewOption(label, f.UserID))
		byID[f.UserID] = f
	}

	choice := friends[0].UserID
	err := huh.NewSelect[string]().
		Title("Send to").
		Options(opts...).
		Value(&choice).
		Run()
	if err != nil {
		return model.Friend{}, err
	}

	return byID[choice], nil
}

// PromptDescription asks for the optional payment note.
func PromptDescription(defaultValue string) (string, error) {
	var desc string

	input := huh.NewInput().
		Title("Description (optional)").
		Description("Add a note").
		Value(&desc)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if err := input.Run(); err != nil {
		return "", err
	}
	if desc == "" && defaultValue != "" {
		return defaultValue, nil
	}
	return desc, nil
}

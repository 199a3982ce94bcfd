package service

import (
	"errors"
	"strings"

	"github.com/dgarcia1724/prestige-finance/internal/model"
)

var ErrFriendNotFound = errors.New("friend not found")

// FriendService serves the read-only friends list; friends are never
// mutated or persisted.
type FriendService struct {
	friends []model.Friend
}

func NewFriendService(friends []model.Friend) *FriendService {
	return &FriendService{friends: friends}
}

func (fs *FriendService) All() []model.Friend {
	out := make([]model.Friend, len(fs.friends))
	copy(out, fs.friends)
	return out
}

func (fs *FriendService) Get(userID string) (model.Friend, error) {
	for _, f := range fs.friends {
		if f.UserID == userID {
			return f, nil
		}
	}
	return model.Friend{}, ErrFriendNotFound
}

// Search matches case-insensitively on any part of the name; an empty
// query returns everyone.
func (fs *FriendService) Search(query string) []model.Friend {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return fs.All()
	}

	var out []model.Friend
	for _, f := range fs.friends {
		if strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	return out
}

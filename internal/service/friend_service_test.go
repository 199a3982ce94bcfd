package service

import (
	"errors"
	"testing"

	"github.com/dgarcia1724/prestige-finance/internal/model"
)

var testFriends = []model.Friend{
	{UserID: "usr_001", Name: "Sarah Chen"},
	{UserID: "usr_002", Name: "Maya Patel"},
	{UserID: "usr_003", Name: "Chloe Kim"},
}

func TestFriendGet(t *testing.T) {
	fs := NewFriendService(testFriends)

	f, err := fs.Get("usr_002")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if f.Name != "Maya Patel" {
		t.Errorf("name = %q, want Maya Patel", f.Name)
	}

	if _, err := fs.Get("usr_999"); !errors.Is(err, ErrFriendNotFound) {
		t.Errorf("Get unknown: err = %v, want ErrFriendNotFound", err)
	}
}

func TestFriendSearch(t *testing.T) {
	fs := NewFriendService(testFriends)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty lists everyone", query: "", want: []string{"usr_001", "usr_002", "usr_003"}},
		{name: "whitespace only lists everyone", query: "   ", want: []string{"usr_001", "usr_002", "usr_003"}},
		{name: "case insensitive", query: "sarah", want: []string{"usr_001"}},
		{name: "substring of surname", query: "pat", want: []string{"usr_002"}},
		{name: "no match", query: "zoe", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, f := range fs.Search(tt.query) {
				got = append(got, f.UserID)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
					break
				}
			}
		})
	}
}

func TestFriendAllReturnsCopy(t *testing.T) {
	fs := NewFriendService(testFriends)

	list := fs.All()
	list[0].Name = "changed"

	again := fs.All()
	if again[0].Name != "Sarah Chen" {
		t.Errorf("mutating the returned slice leaked into the service: %q", again[0].Name)
	}
}

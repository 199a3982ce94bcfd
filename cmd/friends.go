package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dgarcia1724/prestige-finance/internal/service"
	"github.com/dgarcia1724/prestige-finance/internal/ui/views"
)

type friendsFlags struct {
	Search string
}

func NewFriendsCmd(svc *service.Service) *cobra.Command {
	flags := &friendsFlags{}

	cmd := &cobra.Command{
		Use:   "friends",
		Short: "List the friends you can send money to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.NewFriendListView().Render(svc.Friend.Search(flags.Search))
		},
	}

	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Filter friends by name")

	return cmd
}

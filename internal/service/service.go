package service

import (
	"github.com/dgarcia1724/prestige-finance/internal/config"
	"github.com/dgarcia1724/prestige-finance/internal/model"
	"github.com/dgarcia1724/prestige-finance/internal/store"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Friend      *FriendService
	Config      *config.Config
}

func NewService(st *store.Store, friends []model.Friend, cfg *config.Config) *Service {
	return &Service{
		Account:     NewAccountService(st, cfg),
		Transaction: NewTransactionService(st),
		Friend:      NewFriendService(friends),
		Config:      cfg,
	}
}

package service

import (
	"github.com/budgt/budgt/internal/config"
	"github.com/budgt/budgt/internal/store"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Tag         *TagService
}

func NewService(repo store.Repository, cfg *config.Config) *Service {
	return &Service{
		Account:     NewAccountService(repo, cfg),
		Transaction: NewTransactionService(repo, cfg),
		Tag:         NewTagService(repo),
	}
}

package accounts

import (
	"context"
	"errors"
	"strings"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Account, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, code string) (Account, error) {
	if strings.TrimSpace(code) == "" {
		return Account{}, shared.ErrMissingSelection
	}
	return s.repo.Get(ctx, code)
}

// Exists reports whether the code names a known account.
func (s *Service) Exists(ctx context.Context, code string) (bool, error) {
	_, err := s.repo.Get(ctx, code)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, shared.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *Service) Create(ctx context.Context, account Account) (Account, error) {
	if err := s.validate(account); err != nil {
		return Account{}, err
	}
	return s.repo.Create(ctx, account)
}

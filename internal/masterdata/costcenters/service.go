package costcenters

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]CostCenter, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, cc CostCenter) (CostCenter, error) {
	if strings.TrimSpace(cc.Code) == "" || strings.TrimSpace(cc.Name) == "" {
		return CostCenter{}, errors.New("cost center code and name are required")
	}
	return s.repo.Create(ctx, cc)
}

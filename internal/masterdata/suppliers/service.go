package suppliers

import (
	"context"
	"fmt"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

type Service struct {
	repo Repository
	seq  *shared.Sequence
}

func NewService(repo Repository, seq *shared.Sequence) *Service {
	return &Service{repo: repo, seq: seq}
}

func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Supplier, error) {
	if id == "" {
		return Supplier{}, shared.ErrMissingSelection
	}
	return s.repo.Get(ctx, id)
}

// RegisterInput carries the registration form fields. Everything but the
// name is optional.
type RegisterInput struct {
	Name     string
	Contact  string
	Email    string
	Category string
}

// Register creates a supplier with defaults applied: category General,
// rating 5.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Supplier, error) {
	if err := s.validate(input); err != nil {
		return Supplier{}, err
	}
	sup := Supplier{
		ID:       fmt.Sprintf("SUP-%03d", s.seq.Next()),
		Name:     input.Name,
		Contact:  input.Contact,
		Email:    input.Email,
		Category: input.Category,
		Rating:   5,
	}
	if sup.Category == "" {
		sup.Category = "General"
	}
	return s.repo.Create(ctx, sup)
}

package suppliers

import (
	"fmt"
	"strings"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

func (s *Service) validate(input RegisterInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: supplier name", shared.ErrMissingRequiredField)
	}
	return nil
}

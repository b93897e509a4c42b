package accounts

import (
	"errors"
	"strings"
)

func (s *Service) validate(a Account) error {
	if strings.TrimSpace(a.Code) == "" {
		return errors.New("account code is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("account name is required")
	}
	return nil
}

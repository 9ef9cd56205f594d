package services

import (
	"context"

	"github.com/vytor/cyberquest/internal/logger"
	"github.com/vytor/cyberquest/internal/password"
)

// PasswordService scores candidate passwords. The password itself is never
// logged.
type PasswordService interface {
	Score(ctx context.Context, candidate string) password.Result
}

type passwordService struct {
	scorer *password.Scorer
}

// NewPasswordService creates a new PasswordService
func NewPasswordService(scorer *password.Scorer) PasswordService {
	return &passwordService{scorer: scorer}
}

func (s *passwordService) Score(ctx context.Context, candidate string) password.Result {
	res := s.scorer.Score(candidate)
	logger.FromContext(ctx).WithField("password", logger.Redacted(candidate)).Debug("scored password: value=%d tier=%s common=%t", res.Value, res.Tier, res.Common != "")
	return res
}

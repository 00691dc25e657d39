package application

import (
	"errors"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/starterbot/internal/modules/general/domain"
	"github.com/sglre6355/starterbot/internal/shutdown"
)

// ShutdownInteractor handles the shutdown use case.
type ShutdownInteractor struct {
	policy    *domain.AdminPolicy
	requester shutdown.Requester
}

// NewShutdownInteractor creates a new ShutdownInteractor.
func NewShutdownInteractor(policy *domain.AdminPolicy, requester shutdown.Requester) *ShutdownInteractor {
	return &ShutdownInteractor{
		policy:    policy,
		requester: requester,
	}
}

// Authorize checks whether userID may shut the bot down.
func (s *ShutdownInteractor) Authorize(userID snowflake.ID) *domain.ShutdownResult {
	return domain.NewShutdownResult(s.policy.IsAuthorized(userID))
}

// Execute records who asked for the shutdown and raises the request. A
// request that finds shutdown already under way is not an error.
func (s *ShutdownInteractor) Execute(userID snowflake.ID, userName string) error {
	slog.Info("shutdown requested", "user_id", userID.String(), "username", userName)

	err := s.requester.RequestShutdown()
	switch {
	case err == nil:
		slog.Info("passed shutdown request")
		return nil
	case errors.Is(err, shutdown.ErrAlreadyRequested):
		slog.Info("shutdown already in progress", "user_id", userID.String())
		return nil
	case errors.Is(err, shutdown.ErrListenerStopped):
		slog.Warn("shutdown listener already stopped", "user_id", userID.String())
		return nil
	default:
		return err
	}
}

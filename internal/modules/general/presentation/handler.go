package presentation

import (
	"errors"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/starterbot/internal/bot"
	"github.com/sglre6355/starterbot/internal/modules/general/application"
	"github.com/sglre6355/starterbot/internal/modules/general/domain"
	"github.com/sglre6355/starterbot/internal/shutdown"
)

// HelpHandler handles the /help command.
type HelpHandler struct {
	interactor *application.HelpInteractor
}

// NewHelpHandler creates a new HelpHandler.
func NewHelpHandler() *HelpHandler {
	return &HelpHandler{
		interactor: application.NewHelpInteractor(CommandNames()),
	}
}

// Handle replies with the list of commands.
func (h *HelpHandler) Handle(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	result := h.interactor.Execute()
	return r.Respond(bot.EphemeralMessage(result.Message))
}

// PingHandler handles the /ping command and its refresh button.
type PingHandler struct {
	interactor *application.PingInteractor
}

// NewPingHandler creates a new PingHandler.
func NewPingHandler() *PingHandler {
	return &PingHandler{
		interactor: application.NewPingInteractor(),
	}
}

// Handle defers an ephemeral reply, then edits it to show how long the
// deferral took, with a refresh button attached.
func (h *PingHandler) Handle(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	result, err := h.interactor.Execute(func() error {
		return r.Defer(true)
	})
	if err != nil {
		return err
	}

	content := result.Message
	components := refreshPingComponents()
	_, err = r.Edit(&discordgo.WebhookEdit{
		Content:    &content,
		Components: &components,
	})
	return err
}

// HandleRefresh measures again from the refresh button and edits the
// message content in place. Components are not part of the edit, so the
// button stays exactly as it was.
func (h *PingHandler) HandleRefresh(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	result, err := h.interactor.Execute(func() error {
		return r.Defer(false)
	})
	if err != nil {
		return err
	}

	content := result.Message
	_, err = r.Edit(&discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

// ShutdownHandler handles the /shutdown command.
type ShutdownHandler struct {
	interactor   *application.ShutdownInteractor
	retractAfter time.Duration
}

// NewShutdownHandler creates a new ShutdownHandler. Denials are deleted
// after retractAfter.
func NewShutdownHandler(
	policy *domain.AdminPolicy,
	requester shutdown.Requester,
	retractAfter time.Duration,
) *ShutdownHandler {
	return &ShutdownHandler{
		interactor:   application.NewShutdownInteractor(policy, requester),
		retractAfter: retractAfter,
	}
}

// Handle checks the requester against the admin policy. Authorized
// requesters get an acknowledgment before the shutdown request is raised;
// others get an ephemeral denial that is retracted after a delay.
func (h *ShutdownHandler) Handle(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	user := bot.InteractionUser(i)
	userID := requesterID(user)

	result := h.interactor.Authorize(userID)
	if !result.Authorized {
		slog.Info("denied shutdown request", "user_id", userID.String())
		if err := r.Respond(bot.EphemeralMessage(result.Message)); err != nil {
			return err
		}
		h.scheduleRetraction(r)
		return nil
	}

	// Acknowledge first; a failed reply must not stop the shutdown.
	respondErr := r.Respond(bot.EphemeralMessage(result.Message))

	return errors.Join(respondErr, h.interactor.Execute(userID, bot.DisplayName(user)))
}

func (h *ShutdownHandler) scheduleRetraction(r bot.Responder) {
	time.AfterFunc(h.retractAfter, func() {
		if err := r.Delete(); err != nil {
			slog.Warn("failed to retract shutdown denial", "error", err)
		}
	})
}

// requesterID parses the user's snowflake, or returns zero. The module config
// rejects zero admin IDs.
func requesterID(user *discordgo.User) snowflake.ID {
	if user == nil {
		return 0
	}
	id, err := snowflake.Parse(user.ID)
	if err != nil {
		slog.Warn("failed to parse user id", "user_id", user.ID, "error", err)
		return 0
	}
	return id
}

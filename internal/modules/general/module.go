package general

import (
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/starterbot/internal/bot"
	"github.com/sglre6355/starterbot/internal/modules/general/domain"
	"github.com/sglre6355/starterbot/internal/modules/general/presentation"
)

// Compile-time interface checks.
var (
	_ bot.Module             = (*GeneralModule)(nil)
	_ bot.ConfigurableModule = (*GeneralModule)(nil)
)

// GeneralModule provides /help, /ping and /shutdown.
type GeneralModule struct {
	config          *Config
	helpHandler     *presentation.HelpHandler
	pingHandler     *presentation.PingHandler
	shutdownHandler *presentation.ShutdownHandler
}

// NewModule creates the general module.
func NewModule() *GeneralModule {
	return &GeneralModule{}
}

// Name returns the module name.
func (m *GeneralModule) Name() string {
	return "general"
}

// Commands returns the slash commands for this module.
func (m *GeneralModule) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *GeneralModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		presentation.CommandHelp:     m.helpHandler.Handle,
		presentation.CommandPing:     m.pingHandler.Handle,
		presentation.CommandShutdown: m.shutdownHandler.Handle,
	}
}

// ComponentHandlers returns the component handlers for this module.
func (m *GeneralModule) ComponentHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		presentation.RefreshPingCustomID: m.pingHandler.HandleRefresh,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *GeneralModule) EventHandlers() []bot.EventHandler {
	return nil
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *GeneralModule) LoadConfig() error {
	cfg, err := parseConfig()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *GeneralModule) Init(deps bot.ModuleDependencies) error {
	if deps.Shutdown == nil {
		return errors.New("general module requires a shutdown requester")
	}
	if m.config == nil {
		if err := m.LoadConfig(); err != nil {
			return err
		}
	}

	policy := domain.NewAdminPolicy(m.config.AdminUserIDs)
	if policy.Unrestricted() {
		slog.Warn("ADMIN_USER_IDS is empty, any user can shut down the bot")
	} else {
		slog.Info("loaded admin policy", "admins", len(policy.Admins()))
	}

	m.helpHandler = presentation.NewHelpHandler()
	m.pingHandler = presentation.NewPingHandler()
	m.shutdownHandler = presentation.NewShutdownHandler(
		policy,
		deps.Shutdown,
		m.config.ShutdownDenialTTL,
	)
	return nil
}

// Shutdown cleans up module resources.
func (m *GeneralModule) Shutdown() error {
	return nil
}

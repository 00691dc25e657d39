package bot

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/starterbot/internal/shutdown"
)

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config  *Config
	session *discordgo.Session
	modules []Module
	router  *Router

	sender     *shutdown.Sender
	listener   *shutdown.Listener
	terminated chan error

	ctx          context.Context
	cancel       context.CancelFunc
	listenerDone chan struct{}
	listening    bool

	closeOnce sync.Once
	closeErr  error
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	sender, listener := shutdown.New()
	ctx, cancel := context.WithCancel(context.Background())

	return &Bot{
		config:       cfg,
		modules:      make([]Module, 0),
		router:       NewRouter(),
		sender:       sender,
		listener:     listener,
		terminated:   make(chan error, 1),
		ctx:          ctx,
		cancel:       cancel,
		listenerDone: make(chan struct{}),
	}
}

// LoadModules loads modules from the registry.
func (b *Bot) LoadModules(reg *Registry) {
	b.modules = reg.Modules()
}

// Start initializes the bot, connects to Discord, and registers commands.
// The shutdown listener runs until a shutdown command arrives or Stop is
// called; its result is delivered on Terminated.
func (b *Bot) Start() error {
	// Create Discord session
	session, err := discordgo.New("Bot " + b.config.Token())
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	b.session = session

	if err := b.loadModuleConfigs(); err != nil {
		return fmt.Errorf("failed to load module config: %w", err)
	}

	// Initialize modules
	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	if err := b.buildRouter(); err != nil {
		return fmt.Errorf("failed to build interaction router: %w", err)
	}

	// Register interaction handler
	b.session.AddHandler(b.handleInteraction)

	// Register module event handlers
	b.registerEventHandlers(b.session)

	b.startListener()

	// Open connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register commands
	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
	)

	return nil
}

// Terminated delivers the shutdown listener's result once. A nil error means
// the gateway connection was closed in response to a shutdown command.
func (b *Bot) Terminated() <-chan error {
	return b.terminated
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	b.cancel()
	if b.listening {
		<-b.listenerDone
	}

	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	// Late shutdown requests report ErrListenerStopped from here on.
	b.sender.Close()

	return b.closeSession()
}

// startListener starts the task that closes the session on a shutdown
// request.
func (b *Bot) startListener() {
	b.listening = true
	go func() {
		defer close(b.listenerDone)
		b.terminated <- b.listener.Listen(b.ctx, b.closeSession)
	}()
}

// closeSession closes the Discord session at most once.
func (b *Bot) closeSession() error {
	b.closeOnce.Do(func() {
		if b.session != nil {
			b.closeErr = b.session.Close()
		}
	})
	return b.closeErr
}

// loadModuleConfigs calls LoadConfig on every configurable module.
func (b *Bot) loadModuleConfigs() error {
	for _, mod := range b.modules {
		cm, ok := mod.(ConfigurableModule)
		if !ok {
			continue
		}
		if err := cm.LoadConfig(); err != nil {
			return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
		}
	}
	return nil
}

// initModules initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Session:  b.session,
		Shutdown: b.sender,
	}

	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// buildRouter fills the router from module handlers and checks it against
// the commands that will be registered.
func (b *Bot) buildRouter() error {
	for _, mod := range b.modules {
		for name, handler := range mod.CommandHandlers() {
			if err := b.router.HandleCommand(name, handler); err != nil {
				return fmt.Errorf("module %s: %w", mod.Name(), err)
			}
		}
		for customID, handler := range mod.ComponentHandlers() {
			if err := b.router.HandleComponent(customID, handler); err != nil {
				return fmt.Errorf("module %s: %w", mod.Name(), err)
			}
		}
	}

	return b.router.Validate(b.collectCommands())
}

// eventHandlerAdder is satisfied by *discordgo.Session.
type eventHandlerAdder interface {
	AddHandler(handler any) func()
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers(adder eventHandlerAdder) {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			adder.AddHandler(handler)
		}
	}
}

// collectCommands gathers all commands from loaded modules.
func (b *Bot) collectCommands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	for _, mod := range b.modules {
		commands = append(commands, mod.Commands()...)
	}
	return commands
}

// registerCommands replaces the application's commands with the module
// commands, in the configured guild or globally.
func (b *Bot) registerCommands() error {
	commands := b.collectCommands()

	registered, err := b.session.ApplicationCommandBulkOverwrite(
		b.session.State.User.ID,
		b.config.DiscordGuildID, // Empty string registers commands globally
		commands,
	)
	if err != nil {
		return err
	}

	for _, cmd := range registered {
		slog.Debug("registered command", "command", cmd.Name, "guild_id", b.config.DiscordGuildID)
	}

	return nil
}

// handleInteraction routes incoming interactions and logs handler failures.
// discordgo runs each event on its own goroutine, so a failing or panicking
// handler only affects its own interaction.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("recovered from panic in interaction handler",
				"interaction_id", i.ID,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
		}
	}()

	responder := NewDiscordResponder(s, i.Interaction)
	if err := b.router.Dispatch(s, i, responder); err != nil {
		attrs := []any{
			"interaction_id", i.ID,
			"type", i.Type.String(),
			"error", err,
		}
		if user := InteractionUser(i); user != nil {
			attrs = append(attrs, "user_id", user.ID)
		}
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			attrs = append(attrs, "command", i.ApplicationCommandData().Name)
		case discordgo.InteractionMessageComponent:
			attrs = append(attrs, "custom_id", i.MessageComponentData().CustomID)
		}
		slog.Error("failed to handle interaction", attrs...)
	}
}

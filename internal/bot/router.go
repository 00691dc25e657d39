package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/bwmarrin/discordgo"
)

// ErrCommandTableMismatch is returned when registered commands and command
// handlers disagree.
var ErrCommandTableMismatch = errors.New("command table does not match command handlers")

// Notices sent by the fallback handlers.
const (
	CommandNotImplementedNotice   = "This command hasn't been implemented. Try /help"
	ComponentNotImplementedNotice = "Component interaction not yet implemented.\n"
)

// Router dispatches interactions to handlers by command name or component
// custom ID. It is read-only once the bot has started.
type Router struct {
	commands   map[string]InteractionHandler
	components map[string]InteractionHandler
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		commands:   make(map[string]InteractionHandler),
		components: make(map[string]InteractionHandler),
	}
}

// HandleCommand registers the handler for a command name.
func (r *Router) HandleCommand(name string, h InteractionHandler) error {
	if _, ok := r.commands[name]; ok {
		return fmt.Errorf("command %s already has a handler", name)
	}
	r.commands[name] = h
	return nil
}

// HandleComponent registers the handler for a component custom ID.
func (r *Router) HandleComponent(customID string, h InteractionHandler) error {
	if _, ok := r.components[customID]; ok {
		return fmt.Errorf("component %s already has a handler", customID)
	}
	r.components[customID] = h
	return nil
}

// CommandNames returns the sorted names of all command handlers.
func (r *Router) CommandNames() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks that every registered command has a handler and every
// handler belongs to a registered command.
func (r *Router) Validate(commands []*discordgo.ApplicationCommand) error {
	registered := make(map[string]struct{}, len(commands))
	var missing, unregistered []string

	for _, cmd := range commands {
		registered[cmd.Name] = struct{}{}
		if _, ok := r.commands[cmd.Name]; !ok {
			missing = append(missing, cmd.Name)
		}
	}
	for _, name := range r.CommandNames() {
		if _, ok := registered[name]; !ok {
			unregistered = append(unregistered, name)
		}
	}

	if len(missing) > 0 || len(unregistered) > 0 {
		return fmt.Errorf("%w: without handler %v, not registered %v",
			ErrCommandTableMismatch, missing, unregistered)
	}
	return nil
}

// Dispatch runs the handler for the interaction and returns its error.
// Unknown commands and components go to the fallback handlers; other
// interaction types are ignored.
func (r *Router) Dispatch(s *discordgo.Session, i *discordgo.InteractionCreate, resp Responder) error {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		handler, ok := r.commands[name]
		if !ok {
			slog.Warn("found no handler for command", "command", name)
			handler = commandNotImplemented
		}
		return handler(s, i, resp)

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		handler, ok := r.components[customID]
		if !ok {
			slog.Warn("found no handler for component", "custom_id", customID)
			handler = componentNotImplemented
		}
		return handler(s, i, resp)

	default:
		slog.Debug("ignored interaction", "type", i.Type.String())
		return nil
	}
}

func commandNotImplemented(
	_ *discordgo.Session,
	_ *discordgo.InteractionCreate,
	r Responder,
) error {
	return r.Respond(EphemeralMessage(CommandNotImplementedNotice))
}

// componentNotImplemented prefixes the message with a notice. Components are
// left out of the update so the message keeps them.
func componentNotImplemented(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r Responder,
) error {
	content := ComponentNotImplementedNotice
	if i.Message != nil {
		content += i.Message.Content
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

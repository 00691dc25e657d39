package bot

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Responder provides an abstraction for responding to Discord interactions.
// This interface enables testing handlers without a live Discord connection.
type Responder interface {
	// Respond sends the initial response to an interaction.
	Respond(response *discordgo.InteractionResponse) error

	// Defer acknowledges the interaction without content. Command
	// interactions show a "thinking" state; component interactions keep the
	// original message until it is edited.
	Defer(ephemeral bool) error

	// Edit edits the original interaction response.
	Edit(edit *discordgo.WebhookEdit) (*discordgo.Message, error)

	// Delete deletes the original interaction response.
	Delete() error
}

// DiscordResponder implements Responder using a live Discord session.
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

// NewDiscordResponder creates a new DiscordResponder.
func NewDiscordResponder(s *discordgo.Session, i *discordgo.Interaction) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Respond sends a response to the interaction via Discord API.
func (r *DiscordResponder) Respond(response *discordgo.InteractionResponse) error {
	return r.session.InteractionRespond(r.interaction, response)
}

// Defer sends a deferred response matching the interaction type.
func (r *DiscordResponder) Defer(ephemeral bool) error {
	return r.session.InteractionRespond(r.interaction, DeferredResponse(r.interaction.Type, ephemeral))
}

// Edit edits the original response via Discord API.
func (r *DiscordResponder) Edit(edit *discordgo.WebhookEdit) (*discordgo.Message, error) {
	return r.session.InteractionResponseEdit(r.interaction, edit)
}

// Delete deletes the original response via Discord API.
func (r *DiscordResponder) Delete() error {
	return r.session.InteractionResponseDelete(r.interaction)
}

// DeferredResponse builds the deferred acknowledgment for an interaction type.
func DeferredResponse(t discordgo.InteractionType, ephemeral bool) *discordgo.InteractionResponse {
	responseType := discordgo.InteractionResponseDeferredChannelMessageWithSource
	if t == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseDeferredMessageUpdate
	}

	response := &discordgo.InteractionResponse{Type: responseType}
	if ephemeral {
		response.Data = &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		}
	}
	return response
}

// MockResponder is a test double for Responder. It is safe for concurrent use;
// read counters through its methods when handlers respond from another
// goroutine.
type MockResponder struct {
	LastResponse *discordgo.InteractionResponse
	LastEdit     *discordgo.WebhookEdit
	// Returned from every call.
	Err error
	// Returned from Edit.
	Message *discordgo.Message

	mu        sync.Mutex
	responses int
	defers    []bool
	edits     int
	deletes   int
}

// Respond records the response for testing.
func (m *MockResponder) Respond(response *discordgo.InteractionResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastResponse = response
	m.responses++
	return m.Err
}

// Defer records the deferral for testing.
func (m *MockResponder) Defer(ephemeral bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defers = append(m.defers, ephemeral)
	return m.Err
}

// Edit records the edit for testing.
func (m *MockResponder) Edit(edit *discordgo.WebhookEdit) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastEdit = edit
	m.edits++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Message, nil
}

// Delete records the deletion for testing.
func (m *MockResponder) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	return m.Err
}

// Responses returns the number of Respond calls.
func (m *MockResponder) Responses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.responses
}

// Defers returns the ephemeral flag of every Defer call.
func (m *MockResponder) Defers() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bool(nil), m.defers...)
}

// Edits returns the number of Edit calls.
func (m *MockResponder) Edits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.edits
}

// Deletes returns the number of Delete calls.
func (m *MockResponder) Deletes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deletes
}

package presentation

import "github.com/bwmarrin/discordgo"

// Command names and component custom IDs.
const (
	CommandHelp     = "help"
	CommandPing     = "ping"
	CommandShutdown = "shutdown"

	RefreshPingCustomID = "refresh_ping"
)

// Commands returns the slash commands registered by the general module.
// New commands need a handler in the module's CommandHandlers too.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandHelp,
			Description: "Information on how to use the bot",
		},
		{
			Name:        CommandPing,
			Description: "Measure the bot's response latency",
		},
		{
			Name:        CommandShutdown,
			Description: "Shut down the bot",
		},
	}
}

// CommandNames returns the names of Commands in order.
func CommandNames() []string {
	commands := Commands()
	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.Name
	}
	return names
}

// refreshPingComponents returns the action row holding the refresh button.
func refreshPingComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Style:    discordgo.SecondaryButton,
					Emoji:    &discordgo.ComponentEmoji{Name: "🔄"},
					CustomID: RefreshPingCustomID,
				},
			},
		},
	}
}

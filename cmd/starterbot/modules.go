package main

import (
	"github.com/sglre6355/starterbot/internal/bot"
	"github.com/sglre6355/starterbot/internal/modules/general"
)

// newRegistry returns the modules the bot runs with.
func newRegistry() *bot.Registry {
	return bot.NewRegistry().MustRegister(
		general.NewModule(),
	)
}

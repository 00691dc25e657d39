package application

import "github.com/sglre6355/starterbot/internal/modules/general/domain"

// HelpInteractor handles the help use case.
type HelpInteractor struct {
	commandNames []string
}

// NewHelpInteractor creates a new HelpInteractor listing commandNames.
func NewHelpInteractor(commandNames []string) *HelpInteractor {
	return &HelpInteractor{commandNames: commandNames}
}

// Execute returns the help text.
func (h *HelpInteractor) Execute() *domain.HelpResult {
	return domain.NewHelpResult(h.commandNames)
}

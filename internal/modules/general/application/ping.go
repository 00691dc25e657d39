package application

import (
	"time"

	"github.com/sglre6355/starterbot/internal/modules/general/domain"
)

// PingInteractor handles the ping use case.
type PingInteractor struct {
	now func() time.Time
}

// NewPingInteractor creates a new PingInteractor.
func NewPingInteractor() *PingInteractor {
	return &PingInteractor{now: time.Now}
}

// Execute times the acknowledge call and returns the result.
func (p *PingInteractor) Execute(acknowledge func() error) (*domain.PingResult, error) {
	start := p.now()
	if err := acknowledge(); err != nil {
		return nil, err
	}
	return domain.NewPingResult(p.now().Sub(start)), nil
}

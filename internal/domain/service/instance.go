package service

import (
	"time"

	"github.com/picolepixel/rank-day-bot/internal/domain/contract"
	"go.uber.org/zap"
)

// Params carries the timing knobs shared by the services.
type Params struct {
	Location        *time.Location
	TickInterval    time.Duration
	DispatchTimeout time.Duration
}

type Instance struct {
	Registry    *registryService
	Interaction *interactionService
	Scheduler   *scheduler
}

func NewInstance(dm contract.DataManager, dispatcher contract.Dispatcher, log *zap.Logger, p Params) *Instance {
	if p.Location == nil {
		p.Location = time.UTC
	}
	if p.TickInterval <= 0 {
		p.TickInterval = time.Minute
	}
	if p.DispatchTimeout <= 0 || p.DispatchTimeout >= p.TickInterval {
		p.DispatchTimeout = p.TickInterval / 6
	}

	return &Instance{
		Registry:    newRegistry(dm, log),
		Interaction: newInteraction(dm, dispatcher, log, p),
		Scheduler:   newScheduler(dm, dispatcher, log, p),
	}
}

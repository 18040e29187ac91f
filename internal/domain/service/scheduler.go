package service

import (
	"context"
	"sync"
	"time"

	"github.com/picolepixel/rank-day-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type scheduler struct {
	dm         contract.DataManager
	dispatcher contract.Dispatcher
	log        *zap.Logger
	loc        *time.Location
	interval   time.Duration
	timeout    time.Duration
	now        func() time.Time
	stopChan   chan struct{}
	running    bool
	lastFired  string // hour boundary of the last dispatched batch
}

func newScheduler(dm contract.DataManager, dispatcher contract.Dispatcher, log *zap.Logger, p Params) *scheduler {
	return &scheduler{
		dm:         dm,
		dispatcher: dispatcher,
		log:        log,
		loc:        p.Location,
		interval:   p.TickInterval,
		timeout:    p.DispatchTimeout,
		now:        time.Now,
		stopChan:   make(chan struct{}),
		running:    false,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.Info("scheduler starting", zap.Duration("interval", s.interval))
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info("scheduler stopping")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick scans the registry and prompts every user whose preferred hour
// matches the current hour at minute zero. A tick observed a few seconds
// past the true minute boundary still counts for that boundary; a second
// invocation of the same boundary is a no-op.
func (s *scheduler) tick() {
	now := s.now().In(s.loc)
	if now.Minute() != 0 {
		return
	}

	boundary := now.Format("2006-01-02T15")
	if boundary == s.lastFired {
		return
	}

	users, err := s.dm.User().ListUsersWithHour()
	if err != nil {
		s.log.Error("failed to list users", zap.Error(err))
		return
	}

	s.lastFired = boundary

	var wg sync.WaitGroup
	for _, u := range users {
		if u.Hour != now.Hour() {
			continue
		}
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			s.promptUser(chatID, now)
		}(u.ChatID)
	}
	// Prompts run concurrently, so the batch takes at most one dispatch
	// timeout, well under the tick interval.
	wg.Wait()
}

func (s *scheduler) promptUser(chatID int64, now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	t := now.UTC().Truncate(time.Second)

	handle, err := s.dispatcher.SendPrompt(ctx, chatID, promptText(t))
	if err != nil {
		// No record for a prompt that was never shown.
		s.log.Error("failed to dispatch prompt",
			zap.Int64("chatID", chatID), zap.Error(err))
		return
	}

	if err := s.dm.RankDay().Create(chatID, t, handle); err != nil {
		// The prompt was shown but its record is lost; rank callbacks on
		// this handle will be acknowledged and dropped.
		s.log.Error("failed to persist rank day after dispatch",
			zap.Int64("chatID", chatID), zap.Int("handle", handle), zap.Error(err))
	}
}

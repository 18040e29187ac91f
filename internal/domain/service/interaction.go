package service

import (
	"context"
	"strconv"
	"time"

	"github.com/picolepixel/rank-day-bot/internal/domain/contract"
	"github.com/picolepixel/rank-day-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// interactionService drives the per-record state machine:
// pending --rank v--> ranked(v) --edit--> pending, with "add comment" as a
// no-op hook. Every failure is recovered here; callbacks are always safe to
// acknowledge to the transport.
type interactionService struct {
	dm         contract.DataManager
	dispatcher contract.Dispatcher
	log        *zap.Logger
	timeout    time.Duration
}

func newInteraction(dm contract.DataManager, dispatcher contract.Dispatcher, log *zap.Logger, p Params) *interactionService {
	return &interactionService{
		dm:         dm,
		dispatcher: dispatcher,
		log:        log,
		timeout:    p.DispatchTimeout,
	}
}

// HandleRank applies a rank selection callback to the record at handle and
// replaces the prompt with a confirmation.
func (s *interactionService) HandleRank(ctx context.Context, chatID int64, handle int, payload string) {
	v, err := strconv.Atoi(payload)
	if err != nil {
		s.log.Warn("malformed rank payload",
			zap.Int64("chatID", chatID), zap.String("payload", payload))
		return
	}

	rank, err := entity.Ranked(v)
	if err != nil {
		s.log.Warn("rank payload out of range",
			zap.Int64("chatID", chatID), zap.Int("value", v))
		return
	}

	t, ok := s.lookupTime(chatID, handle)
	if !ok {
		return
	}

	if err := s.dm.RankDay().SetRank(chatID, handle, rank); err != nil {
		s.log.Error("failed to set rank",
			zap.Int64("chatID", chatID), zap.Int("handle", handle), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.dispatcher.SendResult(ctx, chatID, handle, resultText(v, t)); err != nil {
		s.log.Error("failed to send rank confirmation",
			zap.Int64("chatID", chatID), zap.Int("handle", handle), zap.Error(err))
	}
}

// HandleEdit reopens a ranked day: the rank is cleared and the full 0-5
// keyboard is redisplayed at the same handle.
func (s *interactionService) HandleEdit(ctx context.Context, chatID int64, handle int) {
	t, ok := s.lookupTime(chatID, handle)
	if !ok {
		return
	}

	if err := s.dm.RankDay().SetRank(chatID, handle, entity.Unranked()); err != nil {
		s.log.Error("failed to clear rank",
			zap.Int64("chatID", chatID), zap.Int("handle", handle), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.dispatcher.EditPrompt(ctx, chatID, handle, promptText(t)); err != nil {
		s.log.Error("failed to reopen prompt",
			zap.Int64("chatID", chatID), zap.Int("handle", handle), zap.Error(err))
	}
}

// HandleAddComment is a reserved hook; the callback is acknowledged by the
// router and no state changes.
func (s *interactionService) HandleAddComment(ctx context.Context, chatID int64, handle int) {
	s.log.Debug("add comment requested",
		zap.Int64("chatID", chatID), zap.Int("handle", handle))
}

// lookupTime resolves the evaluated day for (chatID, handle). A miss is an
// expected condition (stale button after a restart) and only reports false.
func (s *interactionService) lookupTime(chatID int64, handle int) (time.Time, bool) {
	t, err := s.dm.RankDay().GetTimeByHandle(chatID, handle)
	if err != nil {
		s.log.Error("failed to look up rank day",
			zap.Int64("chatID", chatID), zap.Int("handle", handle), zap.Error(err))
		return time.Time{}, false
	}
	if t == nil {
		s.log.Debug("callback for unknown handle",
			zap.Int64("chatID", chatID), zap.Int("handle", handle))
		return time.Time{}, false
	}
	return *t, true
}

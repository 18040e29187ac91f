package service

import (
	"testing"
	"time"

	"github.com/picolepixel/rank-day-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockUserRepo    *mocks.MockUserRepo
	mockRankDayRepo *mocks.MockRankDayRepo
	mockDispatcher  *mocks.MockDispatcher
}

func testParams() Params {
	return Params{
		Location:        time.UTC,
		TickInterval:    time.Minute,
		DispatchTimeout: time.Second,
	}
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	rankDayRepo := mocks.NewMockRankDayRepo(ctrl)
	dm.EXPECT().RankDay().Return(rankDayRepo).AnyTimes()

	dispatcher := mocks.NewMockDispatcher(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockUserRepo:    userRepo,
		mockRankDayRepo: rankDayRepo,
		mockDispatcher:  dispatcher,
	}

	// validate service creation
	instance := NewInstance(dm, dispatcher, zap.NewNop(), testParams())
	require.NotNil(t, instance)

	return
}

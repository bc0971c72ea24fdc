package reader

import (
	"context"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"sync"
)

var _ chapterRepo = &chapterRepoMock{}

type chapterRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Chapter, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *chapterRepoMock) GetByID(ctx context.Context, id int64) (*domain.Chapter, error) {
	if mock.GetByIDFunc == nil {
		panic("chapterRepoMock.GetByIDFunc: method is nil but chapterRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *chapterRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

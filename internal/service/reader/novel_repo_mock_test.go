package reader

import (
	"context"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"sync"
)

var _ novelRepo = &novelRepoMock{}

type novelRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Novel, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *novelRepoMock) GetByID(ctx context.Context, id int64) (*domain.Novel, error) {
	if mock.GetByIDFunc == nil {
		panic("novelRepoMock.GetByIDFunc: method is nil but novelRepo.GetByID was just called")
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

func (mock *novelRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

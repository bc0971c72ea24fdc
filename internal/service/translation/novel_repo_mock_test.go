package translation

import (
	"context"
	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"sync"
)

var _ novelRepo = &novelRepoMock{}

type novelRepoMock struct {
	GetByIDFunc             func(ctx context.Context, id int64) (*domain.Novel, error)
	GetContextForUpdateFunc func(ctx context.Context, id int64) (contextmem.Document, error)
	UpdateContextFunc       func(ctx context.Context, id int64, doc contextmem.Document) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetContextForUpdate []struct {
			Ctx context.Context
			Id  int64
		}
		UpdateContext []struct {
			Ctx context.Context
			Id  int64
			Doc contextmem.Document
		}
	}
	lockGetByID             sync.RWMutex
	lockGetContextForUpdate sync.RWMutex
	lockUpdateContext       sync.RWMutex
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

func (mock *novelRepoMock) GetContextForUpdate(ctx context.Context, id int64) (contextmem.Document, error) {
	if mock.GetContextForUpdateFunc == nil {
		panic("novelRepoMock.GetContextForUpdateFunc: method is nil but novelRepo.GetContextForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetContextForUpdate.Lock()
	mock.calls.GetContextForUpdate = append(mock.calls.GetContextForUpdate, callInfo)
	mock.lockGetContextForUpdate.Unlock()
	return mock.GetContextForUpdateFunc(ctx, id)
}

func (mock *novelRepoMock) GetContextForUpdateCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetContextForUpdate.RLock()
	calls := mock.calls.GetContextForUpdate
	mock.lockGetContextForUpdate.RUnlock()
	return calls
}

func (mock *novelRepoMock) UpdateContext(ctx context.Context, id int64, doc contextmem.Document) error {
	if mock.UpdateContextFunc == nil {
		panic("novelRepoMock.UpdateContextFunc: method is nil but novelRepo.UpdateContext was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
		Doc contextmem.Document
	}{
		Ctx: ctx,
		Id:  id,
		Doc: doc,
	}
	mock.lockUpdateContext.Lock()
	mock.calls.UpdateContext = append(mock.calls.UpdateContext, callInfo)
	mock.lockUpdateContext.Unlock()
	return mock.UpdateContextFunc(ctx, id, doc)
}

func (mock *novelRepoMock) UpdateContextCalls() []struct {
	Ctx context.Context
	Id  int64
	Doc contextmem.Document
} {
	mock.lockUpdateContext.RLock()
	calls := mock.calls.UpdateContext
	mock.lockUpdateContext.RUnlock()
	return calls
}

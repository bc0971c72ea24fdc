package novel

import (
	"context"
	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"sync"
)

var _ novelRepo = &novelRepoMock{}

type novelRepoMock struct {
	CreateFunc              func(ctx context.Context, n *domain.Novel) (*domain.Novel, error)
	GetByIDFunc             func(ctx context.Context, id int64) (*domain.Novel, error)
	ListFunc                func(ctx context.Context, limit int, offset int) ([]*domain.Novel, int, error)
	UpdateFunc              func(ctx context.Context, n *domain.Novel) (*domain.Novel, error)
	DeleteFunc              func(ctx context.Context, id int64) error
	GetContextForUpdateFunc func(ctx context.Context, id int64) (contextmem.Document, error)
	UpdateContextFunc       func(ctx context.Context, id int64, doc contextmem.Document) error

	calls struct {
		Create []struct {
			Ctx context.Context
			N   *domain.Novel
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Update []struct {
			Ctx context.Context
			N   *domain.Novel
		}
		Delete []struct {
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
	lockCreate              sync.RWMutex
	lockGetByID             sync.RWMutex
	lockList                sync.RWMutex
	lockUpdate              sync.RWMutex
	lockDelete              sync.RWMutex
	lockGetContextForUpdate sync.RWMutex
	lockUpdateContext       sync.RWMutex
}

func (mock *novelRepoMock) Create(ctx context.Context, n *domain.Novel) (*domain.Novel, error) {
	if mock.CreateFunc == nil {
		panic("novelRepoMock.CreateFunc: method is nil but novelRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   *domain.Novel
	}{
		Ctx: ctx,
		N:   n,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *novelRepoMock) CreateCalls() []struct {
	Ctx context.Context
	N   *domain.Novel
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *novelRepoMock) List(ctx context.Context, limit int, offset int) ([]*domain.Novel, int, error) {
	if mock.ListFunc == nil {
		panic("novelRepoMock.ListFunc: method is nil but novelRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *novelRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *novelRepoMock) Update(ctx context.Context, n *domain.Novel) (*domain.Novel, error) {
	if mock.UpdateFunc == nil {
		panic("novelRepoMock.UpdateFunc: method is nil but novelRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   *domain.Novel
	}{
		Ctx: ctx,
		N:   n,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, n)
}

func (mock *novelRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	N   *domain.Novel
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *novelRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("novelRepoMock.DeleteFunc: method is nil but novelRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *novelRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
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

package rest

import (
	"context"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"github.com/asonkiya/novel-chrome-extension/internal/service/chapter"
	"sync"
)

var _ chapterService = &chapterServiceMock{}

type chapterServiceMock struct {
	CreateFunc       func(ctx context.Context, input chapter.CreateInput) (*domain.Chapter, error)
	ImportFunc       func(ctx context.Context, input chapter.ImportInput) (*domain.Chapter, error)
	GetFunc          func(ctx context.Context, id int64) (*domain.Chapter, error)
	GetByNoFunc      func(ctx context.Context, novelID int64, chapterNo int) (*domain.Chapter, error)
	ListFunc         func(ctx context.Context, input chapter.ListInput) ([]*domain.Chapter, int, error)
	UpdateFunc       func(ctx context.Context, input chapter.UpdateInput) (*domain.Chapter, error)
	DeleteFunc       func(ctx context.Context, input chapter.DeleteInput) (*domain.Chapter, error)
	DeleteAllFunc    func(ctx context.Context, novelID int64) (int, error)
	DeleteRangeFunc  func(ctx context.Context, input chapter.DeleteRangeInput) (int, int, int, error)
	RebuildLinksFunc func(ctx context.Context, novelID int64) (int, error)
	FormatFunc       func(ctx context.Context, id int64) (*domain.Chapter, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input chapter.CreateInput
		}
		Import []struct {
			Ctx   context.Context
			Input chapter.ImportInput
		}
		Get []struct {
			Ctx context.Context
			Id  int64
		}
		GetByNo []struct {
			Ctx       context.Context
			NovelID   int64
			ChapterNo int
		}
		List []struct {
			Ctx   context.Context
			Input chapter.ListInput
		}
		Update []struct {
			Ctx   context.Context
			Input chapter.UpdateInput
		}
		Delete []struct {
			Ctx   context.Context
			Input chapter.DeleteInput
		}
		DeleteAll []struct {
			Ctx     context.Context
			NovelID int64
		}
		DeleteRange []struct {
			Ctx   context.Context
			Input chapter.DeleteRangeInput
		}
		RebuildLinks []struct {
			Ctx     context.Context
			NovelID int64
		}
		Format []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockCreate       sync.RWMutex
	lockImport       sync.RWMutex
	lockGet          sync.RWMutex
	lockGetByNo      sync.RWMutex
	lockList         sync.RWMutex
	lockUpdate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockDeleteAll    sync.RWMutex
	lockDeleteRange  sync.RWMutex
	lockRebuildLinks sync.RWMutex
	lockFormat       sync.RWMutex
}

func (mock *chapterServiceMock) Create(ctx context.Context, input chapter.CreateInput) (*domain.Chapter, error) {
	if mock.CreateFunc == nil {
		panic("chapterServiceMock.CreateFunc: method is nil but chapterService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chapter.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *chapterServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input chapter.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *chapterServiceMock) Import(ctx context.Context, input chapter.ImportInput) (*domain.Chapter, error) {
	if mock.ImportFunc == nil {
		panic("chapterServiceMock.ImportFunc: method is nil but chapterService.Import was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chapter.ImportInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, input)
}

func (mock *chapterServiceMock) ImportCalls() []struct {
	Ctx   context.Context
	Input chapter.ImportInput
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}

func (mock *chapterServiceMock) Get(ctx context.Context, id int64) (*domain.Chapter, error) {
	if mock.GetFunc == nil {
		panic("chapterServiceMock.GetFunc: method is nil but chapterService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *chapterServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *chapterServiceMock) GetByNo(ctx context.Context, novelID int64, chapterNo int) (*domain.Chapter, error) {
	if mock.GetByNoFunc == nil {
		panic("chapterServiceMock.GetByNoFunc: method is nil but chapterService.GetByNo was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		NovelID   int64
		ChapterNo int
	}{
		Ctx:       ctx,
		NovelID:   novelID,
		ChapterNo: chapterNo,
	}
	mock.lockGetByNo.Lock()
	mock.calls.GetByNo = append(mock.calls.GetByNo, callInfo)
	mock.lockGetByNo.Unlock()
	return mock.GetByNoFunc(ctx, novelID, chapterNo)
}

func (mock *chapterServiceMock) GetByNoCalls() []struct {
	Ctx       context.Context
	NovelID   int64
	ChapterNo int
} {
	mock.lockGetByNo.RLock()
	calls := mock.calls.GetByNo
	mock.lockGetByNo.RUnlock()
	return calls
}

func (mock *chapterServiceMock) List(ctx context.Context, input chapter.ListInput) ([]*domain.Chapter, int, error) {
	if mock.ListFunc == nil {
		panic("chapterServiceMock.ListFunc: method is nil but chapterService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chapter.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *chapterServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input chapter.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *chapterServiceMock) Update(ctx context.Context, input chapter.UpdateInput) (*domain.Chapter, error) {
	if mock.UpdateFunc == nil {
		panic("chapterServiceMock.UpdateFunc: method is nil but chapterService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chapter.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *chapterServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input chapter.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *chapterServiceMock) Delete(ctx context.Context, input chapter.DeleteInput) (*domain.Chapter, error) {
	if mock.DeleteFunc == nil {
		panic("chapterServiceMock.DeleteFunc: method is nil but chapterService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chapter.DeleteInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, input)
}

func (mock *chapterServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	Input chapter.DeleteInput
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *chapterServiceMock) DeleteAll(ctx context.Context, novelID int64) (int, error) {
	if mock.DeleteAllFunc == nil {
		panic("chapterServiceMock.DeleteAllFunc: method is nil but chapterService.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		NovelID int64
	}{
		Ctx:     ctx,
		NovelID: novelID,
	}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx, novelID)
}

func (mock *chapterServiceMock) DeleteAllCalls() []struct {
	Ctx     context.Context
	NovelID int64
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *chapterServiceMock) DeleteRange(ctx context.Context, input chapter.DeleteRangeInput) (int, int, int, error) {
	if mock.DeleteRangeFunc == nil {
		panic("chapterServiceMock.DeleteRangeFunc: method is nil but chapterService.DeleteRange was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chapter.DeleteRangeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteRange.Lock()
	mock.calls.DeleteRange = append(mock.calls.DeleteRange, callInfo)
	mock.lockDeleteRange.Unlock()
	return mock.DeleteRangeFunc(ctx, input)
}

func (mock *chapterServiceMock) DeleteRangeCalls() []struct {
	Ctx   context.Context
	Input chapter.DeleteRangeInput
} {
	mock.lockDeleteRange.RLock()
	calls := mock.calls.DeleteRange
	mock.lockDeleteRange.RUnlock()
	return calls
}

func (mock *chapterServiceMock) RebuildLinks(ctx context.Context, novelID int64) (int, error) {
	if mock.RebuildLinksFunc == nil {
		panic("chapterServiceMock.RebuildLinksFunc: method is nil but chapterService.RebuildLinks was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		NovelID int64
	}{
		Ctx:     ctx,
		NovelID: novelID,
	}
	mock.lockRebuildLinks.Lock()
	mock.calls.RebuildLinks = append(mock.calls.RebuildLinks, callInfo)
	mock.lockRebuildLinks.Unlock()
	return mock.RebuildLinksFunc(ctx, novelID)
}

func (mock *chapterServiceMock) RebuildLinksCalls() []struct {
	Ctx     context.Context
	NovelID int64
} {
	mock.lockRebuildLinks.RLock()
	calls := mock.calls.RebuildLinks
	mock.lockRebuildLinks.RUnlock()
	return calls
}

func (mock *chapterServiceMock) Format(ctx context.Context, id int64) (*domain.Chapter, error) {
	if mock.FormatFunc == nil {
		panic("chapterServiceMock.FormatFunc: method is nil but chapterService.Format was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockFormat.Lock()
	mock.calls.Format = append(mock.calls.Format, callInfo)
	mock.lockFormat.Unlock()
	return mock.FormatFunc(ctx, id)
}

func (mock *chapterServiceMock) FormatCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockFormat.RLock()
	calls := mock.calls.Format
	mock.lockFormat.RUnlock()
	return calls
}

package translation

import (
	"context"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"sync"
	"time"
)

var _ chapterRepo = &chapterRepoMock{}

type chapterRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id int64) (*domain.Chapter, error)
	ListRangeFunc       func(ctx context.Context, novelID int64, fromNo int, toNo int) ([]*domain.Chapter, error)
	SaveTranslationFunc func(ctx context.Context, id int64, content string, at time.Time) (*domain.Chapter, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		ListRange []struct {
			Ctx     context.Context
			NovelID int64
			FromNo  int
			ToNo    int
		}
		SaveTranslation []struct {
			Ctx     context.Context
			Id      int64
			Content string
			At      time.Time
		}
	}
	lockGetByID         sync.RWMutex
	lockListRange       sync.RWMutex
	lockSaveTranslation sync.RWMutex
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

func (mock *chapterRepoMock) ListRange(ctx context.Context, novelID int64, fromNo int, toNo int) ([]*domain.Chapter, error) {
	if mock.ListRangeFunc == nil {
		panic("chapterRepoMock.ListRangeFunc: method is nil but chapterRepo.ListRange was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		NovelID int64
		FromNo  int
		ToNo    int
	}{
		Ctx:     ctx,
		NovelID: novelID,
		FromNo:  fromNo,
		ToNo:    toNo,
	}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, novelID, fromNo, toNo)
}

func (mock *chapterRepoMock) ListRangeCalls() []struct {
	Ctx     context.Context
	NovelID int64
	FromNo  int
	ToNo    int
} {
	mock.lockListRange.RLock()
	calls := mock.calls.ListRange
	mock.lockListRange.RUnlock()
	return calls
}

func (mock *chapterRepoMock) SaveTranslation(ctx context.Context, id int64, content string, at time.Time) (*domain.Chapter, error) {
	if mock.SaveTranslationFunc == nil {
		panic("chapterRepoMock.SaveTranslationFunc: method is nil but chapterRepo.SaveTranslation was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      int64
		Content string
		At      time.Time
	}{
		Ctx:     ctx,
		Id:      id,
		Content: content,
		At:      at,
	}
	mock.lockSaveTranslation.Lock()
	mock.calls.SaveTranslation = append(mock.calls.SaveTranslation, callInfo)
	mock.lockSaveTranslation.Unlock()
	return mock.SaveTranslationFunc(ctx, id, content, at)
}

func (mock *chapterRepoMock) SaveTranslationCalls() []struct {
	Ctx     context.Context
	Id      int64
	Content string
	At      time.Time
} {
	mock.lockSaveTranslation.RLock()
	calls := mock.calls.SaveTranslation
	mock.lockSaveTranslation.RUnlock()
	return calls
}

package rest

import (
	"context"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"github.com/asonkiya/novel-chrome-extension/internal/service/reader"
	"sync"
)

var _ readerService = &readerServiceMock{}

type readerServiceMock struct {
	GetProgressFunc    func(ctx context.Context, novelID int64) (*domain.ReadingProgress, error)
	SaveProgressFunc   func(ctx context.Context, input reader.SaveProgressInput) (*domain.ReadingProgress, error)
	AddBookmarkFunc    func(ctx context.Context, input reader.AddBookmarkInput) (*domain.Bookmark, error)
	ListBookmarksFunc  func(ctx context.Context, chapterID int64) ([]*domain.Bookmark, error)
	DeleteBookmarkFunc func(ctx context.Context, id int64) error

	calls struct {
		GetProgress []struct {
			Ctx     context.Context
			NovelID int64
		}
		SaveProgress []struct {
			Ctx   context.Context
			Input reader.SaveProgressInput
		}
		AddBookmark []struct {
			Ctx   context.Context
			Input reader.AddBookmarkInput
		}
		ListBookmarks []struct {
			Ctx       context.Context
			ChapterID int64
		}
		DeleteBookmark []struct {
			Ctx context.Context
			Id  int64
		}
	}
	lockGetProgress    sync.RWMutex
	lockSaveProgress   sync.RWMutex
	lockAddBookmark    sync.RWMutex
	lockListBookmarks  sync.RWMutex
	lockDeleteBookmark sync.RWMutex
}

func (mock *readerServiceMock) GetProgress(ctx context.Context, novelID int64) (*domain.ReadingProgress, error) {
	if mock.GetProgressFunc == nil {
		panic("readerServiceMock.GetProgressFunc: method is nil but readerService.GetProgress was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		NovelID int64
	}{
		Ctx:     ctx,
		NovelID: novelID,
	}
	mock.lockGetProgress.Lock()
	mock.calls.GetProgress = append(mock.calls.GetProgress, callInfo)
	mock.lockGetProgress.Unlock()
	return mock.GetProgressFunc(ctx, novelID)
}

func (mock *readerServiceMock) GetProgressCalls() []struct {
	Ctx     context.Context
	NovelID int64
} {
	mock.lockGetProgress.RLock()
	calls := mock.calls.GetProgress
	mock.lockGetProgress.RUnlock()
	return calls
}

func (mock *readerServiceMock) SaveProgress(ctx context.Context, input reader.SaveProgressInput) (*domain.ReadingProgress, error) {
	if mock.SaveProgressFunc == nil {
		panic("readerServiceMock.SaveProgressFunc: method is nil but readerService.SaveProgress was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reader.SaveProgressInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSaveProgress.Lock()
	mock.calls.SaveProgress = append(mock.calls.SaveProgress, callInfo)
	mock.lockSaveProgress.Unlock()
	return mock.SaveProgressFunc(ctx, input)
}

func (mock *readerServiceMock) SaveProgressCalls() []struct {
	Ctx   context.Context
	Input reader.SaveProgressInput
} {
	mock.lockSaveProgress.RLock()
	calls := mock.calls.SaveProgress
	mock.lockSaveProgress.RUnlock()
	return calls
}

func (mock *readerServiceMock) AddBookmark(ctx context.Context, input reader.AddBookmarkInput) (*domain.Bookmark, error) {
	if mock.AddBookmarkFunc == nil {
		panic("readerServiceMock.AddBookmarkFunc: method is nil but readerService.AddBookmark was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input reader.AddBookmarkInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddBookmark.Lock()
	mock.calls.AddBookmark = append(mock.calls.AddBookmark, callInfo)
	mock.lockAddBookmark.Unlock()
	return mock.AddBookmarkFunc(ctx, input)
}

func (mock *readerServiceMock) AddBookmarkCalls() []struct {
	Ctx   context.Context
	Input reader.AddBookmarkInput
} {
	mock.lockAddBookmark.RLock()
	calls := mock.calls.AddBookmark
	mock.lockAddBookmark.RUnlock()
	return calls
}

func (mock *readerServiceMock) ListBookmarks(ctx context.Context, chapterID int64) ([]*domain.Bookmark, error) {
	if mock.ListBookmarksFunc == nil {
		panic("readerServiceMock.ListBookmarksFunc: method is nil but readerService.ListBookmarks was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ChapterID int64
	}{
		Ctx:       ctx,
		ChapterID: chapterID,
	}
	mock.lockListBookmarks.Lock()
	mock.calls.ListBookmarks = append(mock.calls.ListBookmarks, callInfo)
	mock.lockListBookmarks.Unlock()
	return mock.ListBookmarksFunc(ctx, chapterID)
}

func (mock *readerServiceMock) ListBookmarksCalls() []struct {
	Ctx       context.Context
	ChapterID int64
} {
	mock.lockListBookmarks.RLock()
	calls := mock.calls.ListBookmarks
	mock.lockListBookmarks.RUnlock()
	return calls
}

func (mock *readerServiceMock) DeleteBookmark(ctx context.Context, id int64) error {
	if mock.DeleteBookmarkFunc == nil {
		panic("readerServiceMock.DeleteBookmarkFunc: method is nil but readerService.DeleteBookmark was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteBookmark.Lock()
	mock.calls.DeleteBookmark = append(mock.calls.DeleteBookmark, callInfo)
	mock.lockDeleteBookmark.Unlock()
	return mock.DeleteBookmarkFunc(ctx, id)
}

func (mock *readerServiceMock) DeleteBookmarkCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDeleteBookmark.RLock()
	calls := mock.calls.DeleteBookmark
	mock.lockDeleteBookmark.RUnlock()
	return calls
}

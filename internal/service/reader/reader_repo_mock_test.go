package reader

import (
	"context"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"sync"
)

var _ readerRepo = &readerRepoMock{}

type readerRepoMock struct {
	GetProgressFunc    func(ctx context.Context, novelID int64) (*domain.ReadingProgress, error)
	UpsertProgressFunc func(ctx context.Context, p *domain.ReadingProgress) (*domain.ReadingProgress, error)
	CreateBookmarkFunc func(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	ListBookmarksFunc  func(ctx context.Context, chapterID int64) ([]*domain.Bookmark, error)
	DeleteBookmarkFunc func(ctx context.Context, id int64) error

	calls struct {
		GetProgress []struct {
			Ctx     context.Context
			NovelID int64
		}
		UpsertProgress []struct {
			Ctx context.Context
			P   *domain.ReadingProgress
		}
		CreateBookmark []struct {
			Ctx context.Context
			B   *domain.Bookmark
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
	lockUpsertProgress sync.RWMutex
	lockCreateBookmark sync.RWMutex
	lockListBookmarks  sync.RWMutex
	lockDeleteBookmark sync.RWMutex
}

func (mock *readerRepoMock) GetProgress(ctx context.Context, novelID int64) (*domain.ReadingProgress, error) {
	if mock.GetProgressFunc == nil {
		panic("readerRepoMock.GetProgressFunc: method is nil but readerRepo.GetProgress was just called")
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

func (mock *readerRepoMock) GetProgressCalls() []struct {
	Ctx     context.Context
	NovelID int64
} {
	mock.lockGetProgress.RLock()
	calls := mock.calls.GetProgress
	mock.lockGetProgress.RUnlock()
	return calls
}

func (mock *readerRepoMock) UpsertProgress(ctx context.Context, p *domain.ReadingProgress) (*domain.ReadingProgress, error) {
	if mock.UpsertProgressFunc == nil {
		panic("readerRepoMock.UpsertProgressFunc: method is nil but readerRepo.UpsertProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.ReadingProgress
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpsertProgress.Lock()
	mock.calls.UpsertProgress = append(mock.calls.UpsertProgress, callInfo)
	mock.lockUpsertProgress.Unlock()
	return mock.UpsertProgressFunc(ctx, p)
}

func (mock *readerRepoMock) UpsertProgressCalls() []struct {
	Ctx context.Context
	P   *domain.ReadingProgress
} {
	mock.lockUpsertProgress.RLock()
	calls := mock.calls.UpsertProgress
	mock.lockUpsertProgress.RUnlock()
	return calls
}

func (mock *readerRepoMock) CreateBookmark(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	if mock.CreateBookmarkFunc == nil {
		panic("readerRepoMock.CreateBookmarkFunc: method is nil but readerRepo.CreateBookmark was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Bookmark
	}{
		Ctx: ctx,
		B:   b,
	}
	mock.lockCreateBookmark.Lock()
	mock.calls.CreateBookmark = append(mock.calls.CreateBookmark, callInfo)
	mock.lockCreateBookmark.Unlock()
	return mock.CreateBookmarkFunc(ctx, b)
}

func (mock *readerRepoMock) CreateBookmarkCalls() []struct {
	Ctx context.Context
	B   *domain.Bookmark
} {
	mock.lockCreateBookmark.RLock()
	calls := mock.calls.CreateBookmark
	mock.lockCreateBookmark.RUnlock()
	return calls
}

func (mock *readerRepoMock) ListBookmarks(ctx context.Context, chapterID int64) ([]*domain.Bookmark, error) {
	if mock.ListBookmarksFunc == nil {
		panic("readerRepoMock.ListBookmarksFunc: method is nil but readerRepo.ListBookmarks was just called")
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

func (mock *readerRepoMock) ListBookmarksCalls() []struct {
	Ctx       context.Context
	ChapterID int64
} {
	mock.lockListBookmarks.RLock()
	calls := mock.calls.ListBookmarks
	mock.lockListBookmarks.RUnlock()
	return calls
}

func (mock *readerRepoMock) DeleteBookmark(ctx context.Context, id int64) error {
	if mock.DeleteBookmarkFunc == nil {
		panic("readerRepoMock.DeleteBookmarkFunc: method is nil but readerRepo.DeleteBookmark was just called")
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

func (mock *readerRepoMock) DeleteBookmarkCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDeleteBookmark.RLock()
	calls := mock.calls.DeleteBookmark
	mock.lockDeleteBookmark.RUnlock()
	return calls
}

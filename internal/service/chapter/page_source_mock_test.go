package chapter

import (
	"context"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
	"sync"
)

var _ pageSource = &pageSourceMock{}

type pageSourceMock struct {
	FetchFunc   func(ctx context.Context, pageURL string) (*domain.WebPage, error)
	ExtractFunc func(html []byte, pageURL string) (*domain.WebPage, error)

	calls struct {
		Fetch []struct {
			Ctx     context.Context
			PageURL string
		}
		Extract []struct {
			Html    []byte
			PageURL string
		}
	}
	lockFetch   sync.RWMutex
	lockExtract sync.RWMutex
}

func (mock *pageSourceMock) Fetch(ctx context.Context, pageURL string) (*domain.WebPage, error) {
	if mock.FetchFunc == nil {
		panic("pageSourceMock.FetchFunc: method is nil but pageSource.Fetch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PageURL string
	}{
		Ctx:     ctx,
		PageURL: pageURL,
	}
	mock.lockFetch.Lock()
	mock.calls.Fetch = append(mock.calls.Fetch, callInfo)
	mock.lockFetch.Unlock()
	return mock.FetchFunc(ctx, pageURL)
}

func (mock *pageSourceMock) FetchCalls() []struct {
	Ctx     context.Context
	PageURL string
} {
	mock.lockFetch.RLock()
	calls := mock.calls.Fetch
	mock.lockFetch.RUnlock()
	return calls
}

func (mock *pageSourceMock) Extract(html []byte, pageURL string) (*domain.WebPage, error) {
	if mock.ExtractFunc == nil {
		panic("pageSourceMock.ExtractFunc: method is nil but pageSource.Extract was just called")
	}
	callInfo := struct {
		Html    []byte
		PageURL string
	}{
		Html:    html,
		PageURL: pageURL,
	}
	mock.lockExtract.Lock()
	mock.calls.Extract = append(mock.calls.Extract, callInfo)
	mock.lockExtract.Unlock()
	return mock.ExtractFunc(html, pageURL)
}

func (mock *pageSourceMock) ExtractCalls() []struct {
	Html    []byte
	PageURL string
} {
	mock.lockExtract.RLock()
	calls := mock.calls.Extract
	mock.lockExtract.RUnlock()
	return calls
}

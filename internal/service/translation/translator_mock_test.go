package translation

import (
	"context"
	"encoding/json"
	"github.com/asonkiya/novel-chrome-extension/internal/provider"
	"sync"
)

var _ provider.Translator = &translatorMock{}

type translatorMock struct {
	TranslateFunc func(ctx context.Context, req provider.TranslationRequest) (json.RawMessage, error)
	NameFunc      func() string

	calls struct {
		Translate []struct {
			Ctx context.Context
			Req provider.TranslationRequest
		}
		Name []struct{}
	}
	lockTranslate sync.RWMutex
	lockName      sync.RWMutex
}

func (mock *translatorMock) Translate(ctx context.Context, req provider.TranslationRequest) (json.RawMessage, error) {
	if mock.TranslateFunc == nil {
		panic("translatorMock.TranslateFunc: method is nil but provider.Translator.Translate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req provider.TranslationRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockTranslate.Lock()
	mock.calls.Translate = append(mock.calls.Translate, callInfo)
	mock.lockTranslate.Unlock()
	return mock.TranslateFunc(ctx, req)
}

func (mock *translatorMock) TranslateCalls() []struct {
	Ctx context.Context
	Req provider.TranslationRequest
} {
	mock.lockTranslate.RLock()
	calls := mock.calls.Translate
	mock.lockTranslate.RUnlock()
	return calls
}

func (mock *translatorMock) Name() string {
	if mock.NameFunc == nil {
		panic("translatorMock.NameFunc: method is nil but provider.Translator.Name was just called")
	}
	mock.lockName.Lock()
	mock.calls.Name = append(mock.calls.Name, struct{}{})
	mock.lockName.Unlock()
	return mock.NameFunc()
}

func (mock *translatorMock) NameCalls() []struct{} {
	mock.lockName.RLock()
	calls := mock.calls.Name
	mock.lockName.RUnlock()
	return calls
}

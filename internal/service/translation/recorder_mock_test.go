package translation

import (
	"sync"
	"time"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	TranslationFinishedFunc func(outcome string)
	OracleCalledFunc        func(provider string, d time.Duration, err error)
	SliceBuiltFunc          func(locks int, entities int)
	ContextMergedFunc       func(skipped int, lockConflicts int, entityConflicts int)
	ContextPrunedFunc       func(locks int, entities int)

	calls struct {
		TranslationFinished []struct {
			Outcome string
		}
		OracleCalled []struct {
			Provider string
			D        time.Duration
			Err      error
		}
		SliceBuilt []struct {
			Locks    int
			Entities int
		}
		ContextMerged []struct {
			Skipped         int
			LockConflicts   int
			EntityConflicts int
		}
		ContextPruned []struct {
			Locks    int
			Entities int
		}
	}
	lockTranslationFinished sync.RWMutex
	lockOracleCalled        sync.RWMutex
	lockSliceBuilt          sync.RWMutex
	lockContextMerged       sync.RWMutex
	lockContextPruned       sync.RWMutex
}

func (mock *recorderMock) TranslationFinished(outcome string) {
	if mock.TranslationFinishedFunc == nil {
		panic("recorderMock.TranslationFinishedFunc: method is nil but recorder.TranslationFinished was just called")
	}
	callInfo := struct {
		Outcome string
	}{
		Outcome: outcome,
	}
	mock.lockTranslationFinished.Lock()
	mock.calls.TranslationFinished = append(mock.calls.TranslationFinished, callInfo)
	mock.lockTranslationFinished.Unlock()
	mock.TranslationFinishedFunc(outcome)
}

func (mock *recorderMock) TranslationFinishedCalls() []struct {
	Outcome string
} {
	mock.lockTranslationFinished.RLock()
	calls := mock.calls.TranslationFinished
	mock.lockTranslationFinished.RUnlock()
	return calls
}

func (mock *recorderMock) OracleCalled(provider string, d time.Duration, err error) {
	if mock.OracleCalledFunc == nil {
		panic("recorderMock.OracleCalledFunc: method is nil but recorder.OracleCalled was just called")
	}
	callInfo := struct {
		Provider string
		D        time.Duration
		Err      error
	}{
		Provider: provider,
		D:        d,
		Err:      err,
	}
	mock.lockOracleCalled.Lock()
	mock.calls.OracleCalled = append(mock.calls.OracleCalled, callInfo)
	mock.lockOracleCalled.Unlock()
	mock.OracleCalledFunc(provider, d, err)
}

func (mock *recorderMock) OracleCalledCalls() []struct {
	Provider string
	D        time.Duration
	Err      error
} {
	mock.lockOracleCalled.RLock()
	calls := mock.calls.OracleCalled
	mock.lockOracleCalled.RUnlock()
	return calls
}

func (mock *recorderMock) SliceBuilt(locks int, entities int) {
	if mock.SliceBuiltFunc == nil {
		panic("recorderMock.SliceBuiltFunc: method is nil but recorder.SliceBuilt was just called")
	}
	callInfo := struct {
		Locks    int
		Entities int
	}{
		Locks:    locks,
		Entities: entities,
	}
	mock.lockSliceBuilt.Lock()
	mock.calls.SliceBuilt = append(mock.calls.SliceBuilt, callInfo)
	mock.lockSliceBuilt.Unlock()
	mock.SliceBuiltFunc(locks, entities)
}

func (mock *recorderMock) SliceBuiltCalls() []struct {
	Locks    int
	Entities int
} {
	mock.lockSliceBuilt.RLock()
	calls := mock.calls.SliceBuilt
	mock.lockSliceBuilt.RUnlock()
	return calls
}

func (mock *recorderMock) ContextMerged(skipped int, lockConflicts int, entityConflicts int) {
	if mock.ContextMergedFunc == nil {
		panic("recorderMock.ContextMergedFunc: method is nil but recorder.ContextMerged was just called")
	}
	callInfo := struct {
		Skipped         int
		LockConflicts   int
		EntityConflicts int
	}{
		Skipped:         skipped,
		LockConflicts:   lockConflicts,
		EntityConflicts: entityConflicts,
	}
	mock.lockContextMerged.Lock()
	mock.calls.ContextMerged = append(mock.calls.ContextMerged, callInfo)
	mock.lockContextMerged.Unlock()
	mock.ContextMergedFunc(skipped, lockConflicts, entityConflicts)
}

func (mock *recorderMock) ContextMergedCalls() []struct {
	Skipped         int
	LockConflicts   int
	EntityConflicts int
} {
	mock.lockContextMerged.RLock()
	calls := mock.calls.ContextMerged
	mock.lockContextMerged.RUnlock()
	return calls
}

func (mock *recorderMock) ContextPruned(locks int, entities int) {
	if mock.ContextPrunedFunc == nil {
		panic("recorderMock.ContextPrunedFunc: method is nil but recorder.ContextPruned was just called")
	}
	callInfo := struct {
		Locks    int
		Entities int
	}{
		Locks:    locks,
		Entities: entities,
	}
	mock.lockContextPruned.Lock()
	mock.calls.ContextPruned = append(mock.calls.ContextPruned, callInfo)
	mock.lockContextPruned.Unlock()
	mock.ContextPrunedFunc(locks, entities)
}

func (mock *recorderMock) ContextPrunedCalls() []struct {
	Locks    int
	Entities int
} {
	mock.lockContextPruned.RLock()
	calls := mock.calls.ContextPruned
	mock.lockContextPruned.RUnlock()
	return calls
}

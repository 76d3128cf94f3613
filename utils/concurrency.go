package utils

import (
	"context"
	"net/http"
	"sync"

	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
	"golang.org/x/sync/semaphore"
)

// Concurrency runs do for every index with at most semWeight goroutines in
// flight. The first error reported through setError cancels the pending
// acquisitions and is returned once every running job finishes.
func Concurrency(
	semWeight int64,
	count int,
	do func(index int, setError func(errRes *res.ErrorRes)),
) *res.ErrorRes {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr *res.ErrorRes

	sem := semaphore.NewWeighted(semWeight)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setError := func(errRes *res.ErrorRes) {
		mu.Lock()
		if firstErr == nil {
			firstErr = errRes
		}
		mu.Unlock()
		cancel()
	}

	for i := 0; i < count; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			defer sem.Release(1)

			do(index, setError)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if firstErr != nil {
		return firstErr
	}
	if err := ctx.Err(); err != nil && err != context.Canceled {
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	return nil
}

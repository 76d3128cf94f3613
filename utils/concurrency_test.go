package utils

import (
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/KR-EduLab/Intranet_BLessonPlan/res"
)

func TestConcurrencyRunsAll(t *testing.T) {
	var ran int64
	errRes := Concurrency(3, 10, func(index int, setError func(errRes *res.ErrorRes)) {
		atomic.AddInt64(&ran, 1)
	})
	if errRes != nil {
		t.Fatalf("unexpected error: %v", errRes.Err)
	}
	if ran != 10 {
		t.Errorf("ran %d jobs, want 10", ran)
	}
}

func TestConcurrencyReturnsFirstError(t *testing.T) {
	wantErr := errors.New("boom")
	errRes := Concurrency(1, 5, func(index int, setError func(errRes *res.ErrorRes)) {
		if index == 0 {
			setError(&res.ErrorRes{
				Err:        wantErr,
				StatusCode: http.StatusServiceUnavailable,
			})
		}
	})
	if errRes == nil {
		t.Fatal("expected an error")
	}
	if errRes.Err != wantErr {
		t.Errorf("err = %v", errRes.Err)
	}
	if errRes.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d", errRes.StatusCode)
	}
}

func TestConcurrencyZeroCount(t *testing.T) {
	if errRes := Concurrency(2, 0, func(index int, setError func(errRes *res.ErrorRes)) {
		t.Error("no job should run")
	}); errRes != nil {
		t.Fatalf("unexpected error: %v", errRes.Err)
	}
}

package funct

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	out, err := Map([]int{1, 2, 3}, func(x int) (string, error) {
		return strconv.Itoa(x * 2), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, []string{"2", "4", "6"}) {
		t.Errorf("out = %v", out)
	}
}

func TestMapError(t *testing.T) {
	wantErr := errors.New("boom")
	out, err := Map([]int{1, 2}, func(x int) (int, error) {
		if x == 2 {
			return 0, wantErr
		}
		return x, nil
	})
	if err != wantErr {
		t.Errorf("err = %v", err)
	}
	if out != nil {
		t.Errorf("out = %v, want nil", out)
	}
}

func TestFilter(t *testing.T) {
	out := Filter([]int{1, 2, 3, 4}, func(x int) bool { return x%2 == 0 })
	if !reflect.DeepEqual(out, []int{2, 4}) {
		t.Errorf("out = %v", out)
	}
}

func TestIndex(t *testing.T) {
	values := []string{"a", "b", "c"}
	if got := Index(values, func(x string) bool { return x == "b" }); got != 1 {
		t.Errorf("Index = %d, want 1", got)
	}
	if got := Index(values, func(x string) bool { return x == "z" }); got != -1 {
		t.Errorf("Index = %d, want -1", got)
	}
}

func TestSome(t *testing.T) {
	values := []int{1, 3, 5}
	if !Some(values, func(x int) bool { return x == 3 }) {
		t.Error("Some should find 3")
	}
	if Some(values, func(x int) bool { return x == 4 }) {
		t.Error("Some should not find 4")
	}
}

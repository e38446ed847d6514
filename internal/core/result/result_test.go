package result

import (
	"testing"

	"github.com/JCH97/Catalog-APIs/internal/core/serviceerrors"
)

func TestOk(t *testing.T) {
	r := Ok(42)

	if !r.IsSuccess() {
		t.Fatal("expected success")
	}
	if r.IsFailure() {
		t.Fatal("expected not failure")
	}
	value, ok := r.Value()
	if !ok || value != 42 {
		t.Fatalf("expected value 42, got %d (present=%v)", value, ok)
	}
	if _, present := r.ErrorValue(); present {
		t.Fatal("expected no error on success result")
	}
}

func TestFail(t *testing.T) {
	err := serviceerrors.NewValidationError("bad input")
	r := Fail[int](err)

	if r.IsSuccess() {
		t.Fatal("expected failure")
	}
	got, present := r.ErrorValue()
	if !present {
		t.Fatal("expected error to be present")
	}
	if got.Kind != serviceerrors.KindValidation {
		t.Fatalf("expected VALIDATION kind, got %s", got.Kind)
	}
	if _, ok := r.Value(); ok {
		t.Fatal("expected no value on failure result")
	}
}

func TestFail_NilErrorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil error")
		}
	}()
	Fail[int](nil)
}

func TestUnwrap(t *testing.T) {
	t.Run("returns value on success", func(t *testing.T) {
		if got := Ok("hello").Unwrap(); got != "hello" {
			t.Fatalf("expected 'hello', got %q", got)
		}
	})

	t.Run("panics on failure", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		Fail[string](serviceerrors.NewNotFoundError("missing")).Unwrap()
	})
}

func TestUnwrapError(t *testing.T) {
	t.Run("returns error on failure", func(t *testing.T) {
		err := serviceerrors.NewConflictError("duplicate")
		if got := Fail[int](err).UnwrapError(); got != err {
			t.Fatalf("expected original error, got %v", got)
		}
	})

	t.Run("panics on success", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		Ok(1).UnwrapError()
	})
}

func TestExpect(t *testing.T) {
	if got := Ok(7).Expect("should not panic"); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}

	defer func() {
		if msg := recover(); msg != "custom message" {
			t.Fatalf("expected panic with custom message, got %v", msg)
		}
	}()
	Fail[int](serviceerrors.NewValidationError("x")).Expect("custom message")
}

func TestUnwrapOr(t *testing.T) {
	tests := []struct {
		name string
		r    Result[int]
		def  int
		want int
	}{
		{"success ignores default", Ok(10), 99, 10},
		{"failure returns default", Fail[int](serviceerrors.NewValidationError("x")), 99, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.UnwrapOr(tt.def); got != tt.want {
				t.Errorf("UnwrapOr = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUnwrapOrElse(t *testing.T) {
	r := Fail[string](serviceerrors.NewNotFoundError("gone"))
	got := r.UnwrapOrElse(func(err *serviceerrors.ServiceError) string {
		return "fallback:" + err.Message
	})
	if got != "fallback:gone" {
		t.Fatalf("expected recovery value, got %q", got)
	}

	if got := Ok("value").UnwrapOrElse(func(*serviceerrors.ServiceError) string { return "unused" }); got != "value" {
		t.Fatalf("expected original value, got %q", got)
	}
}

func TestMap(t *testing.T) {
	t.Run("transforms success value", func(t *testing.T) {
		r := Map(Ok(3), func(v int) string {
			if v == 3 {
				return "three"
			}
			return "other"
		})
		if r.Unwrap() != "three" {
			t.Fatalf("expected 'three', got %q", r.Unwrap())
		}
	})

	t.Run("passes failure through untouched", func(t *testing.T) {
		err := serviceerrors.NewValidationError("bad")
		r := Map(Fail[int](err), func(v int) string { return "unused" })
		if r.UnwrapError() != err {
			t.Fatal("expected original error to pass through")
		}
	})
}

func TestMapOr(t *testing.T) {
	if got := MapOr(Ok(2), -1, func(v int) int { return v * 10 }); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
	if got := MapOr(Fail[int](serviceerrors.NewValidationError("x")), -1, func(v int) int { return v * 10 }); got != -1 {
		t.Fatalf("expected default -1, got %d", got)
	}
}

func TestMapOrElse(t *testing.T) {
	got := MapOrElse(
		Fail[int](serviceerrors.NewNotFoundError("missing")),
		func(err *serviceerrors.ServiceError) string { return err.Kind.String() },
		func(v int) string { return "success" },
	)
	if got != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %q", got)
	}
}

func TestAndThen(t *testing.T) {
	parsePositive := func(v int) Result[int] {
		if v <= 0 {
			return Fail[int](serviceerrors.NewValidationError("must be positive"))
		}
		return Ok(v)
	}

	t.Run("chains on success", func(t *testing.T) {
		r := AndThen(Ok(5), parsePositive)
		if r.Unwrap() != 5 {
			t.Fatalf("expected 5, got %d", r.Unwrap())
		}
	})

	t.Run("chain can introduce failure", func(t *testing.T) {
		r := AndThen(Ok(-5), parsePositive)
		if !r.IsFailure() {
			t.Fatal("expected failure from chained fn")
		}
	})

	t.Run("short-circuits on failure", func(t *testing.T) {
		called := false
		err := serviceerrors.NewConflictError("stop")
		r := AndThen(Fail[int](err), func(v int) Result[int] {
			called = true
			return Ok(v)
		})
		if called {
			t.Fatal("chained fn must not run on failure")
		}
		if r.UnwrapError() != err {
			t.Fatal("expected original error")
		}
	})
}

func TestMapError(t *testing.T) {
	r := MapError(Fail[int](serviceerrors.NewValidationError("raw")), func(err *serviceerrors.ServiceError) *serviceerrors.ServiceError {
		return serviceerrors.NewInternalError("wrapped: " + err.Message)
	})
	got := r.UnwrapError()
	if got.Kind != serviceerrors.KindInternal || got.Message != "wrapped: raw" {
		t.Fatalf("unexpected mapped error: %+v", got)
	}

	ok := MapError(Ok(1), func(err *serviceerrors.ServiceError) *serviceerrors.ServiceError { return err })
	if !ok.IsSuccess() {
		t.Fatal("expected success to pass through")
	}
}

func TestCombine(t *testing.T) {
	failA := serviceerrors.NewValidationError("a")
	failB := serviceerrors.NewNotFoundError("b")

	t.Run("all success", func(t *testing.T) {
		r := Combine(Erase(Ok(1)), Erase(Ok("x")))
		if !r.IsSuccess() {
			t.Fatal("expected success")
		}
	})

	t.Run("returns first failure in order", func(t *testing.T) {
		r := Combine(Erase(Ok(1)), Erase(Fail[int](failA)), Erase(Fail[string](failB)))
		if r.UnwrapError() != failA {
			t.Fatal("expected first failure to win")
		}
	})

	t.Run("empty list succeeds", func(t *testing.T) {
		if !Combine().IsSuccess() {
			t.Fatal("expected success for empty input")
		}
	})
}

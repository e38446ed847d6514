package result

import (
	"fmt"

	"github.com/JCH97/Catalog-APIs/internal/core/serviceerrors"
)

// Result carries either a success value or a structured error, never both.
// It is the return type for every operation whose failure is an expected
// outcome (validation, missing entity, role checks). Programming errors and
// infrastructure faults stay on the ordinary error channel.
type Result[T any] struct {
	ok    bool
	value T
	err   *serviceerrors.ServiceError
}

func Ok[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

func Fail[T any](err *serviceerrors.ServiceError) Result[T] {
	if err == nil {
		panic("result: Fail called with nil error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool {
	return r.ok
}

func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value and whether it is present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// ErrorValue returns the error and whether it is present.
func (r Result[T]) ErrorValue() (*serviceerrors.ServiceError, bool) {
	return r.err, !r.ok
}

// Unwrap returns the success value, panicking on a failure result. Reserve
// it for places where failure is a bug.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("result: unwrap on failure: %s: %s", r.err.Kind, r.err.Message))
	}
	return r.value
}

// Expect behaves like Unwrap with a caller-supplied panic message.
func (r Result[T]) Expect(msg string) T {
	if !r.ok {
		panic(msg)
	}
	return r.value
}

// UnwrapError returns the error, panicking on a success result.
func (r Result[T]) UnwrapError() *serviceerrors.ServiceError {
	if r.ok {
		panic("result: unwrap error on success")
	}
	return r.err
}

func (r Result[T]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

func (r Result[T]) UnwrapOrElse(fn func(*serviceerrors.ServiceError) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Map applies fn to the success value, passing failures through untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return Fail[U](r.err)
}

// MapOr applies fn to the success value or returns def on failure.
func MapOr[T, U any](r Result[T], def U, fn func(T) U) U {
	if r.ok {
		return fn(r.value)
	}
	return def
}

// MapOrElse applies fn to the success value or onErr to the error.
func MapOrElse[T, U any](r Result[T], onErr func(*serviceerrors.ServiceError) U, fn func(T) U) U {
	if r.ok {
		return fn(r.value)
	}
	return onErr(r.err)
}

// AndThen chains a result-returning fn, short-circuiting on failure.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.ok {
		return fn(r.value)
	}
	return Fail[U](r.err)
}

// MapError transforms the error channel, passing successes through.
func MapError[T any](r Result[T], fn func(*serviceerrors.ServiceError) *serviceerrors.ServiceError) Result[T] {
	if r.ok {
		return r
	}
	return Fail[T](fn(r.err))
}

// Combine returns the first failure among results, or Ok otherwise.
func Combine(results ...Result[any]) Result[any] {
	for _, r := range results {
		if r.IsFailure() {
			return r
		}
	}
	return Ok[any](nil)
}

// Erase drops the value type so heterogeneous results can be combined.
func Erase[T any](r Result[T]) Result[any] {
	if r.ok {
		return Ok[any](r.value)
	}
	return Fail[any](r.err)
}

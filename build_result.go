package embedbuilder

// BuildResult pairs a built value with the error that prevented it, if any.
// A failed result never carries a partial value: Value and Unwrap return the
// zero T alongside the error.
//
//	embed, err := b.Result().Unwrap()
//	if err != nil {
//	    return fmt.Errorf("build status embed: %w", err)
//	}
type BuildResult[T any] struct {
	value T
	err   error
}

// NewBuildResult wraps the results of a build step. value is dropped when
// err is non-nil.
func NewBuildResult[T any](value T, err error) BuildResult[T] {
	if err != nil {
		return BuildResult[T]{err: err}
	}
	return BuildResult[T]{value: value}
}

// Unwrap returns the value and the error as a pair.
func (r BuildResult[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Must returns the value, panicking with the error if the build failed.
// Meant for tests and fixed inputs.
func (r BuildResult[T]) Must() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Or returns the value, or fallback if the build failed.
func (r BuildResult[T]) Or(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Ok reports whether the build succeeded.
func (r BuildResult[T]) Ok() bool { return r.err == nil }

// Err returns the build error, or nil.
func (r BuildResult[T]) Err() error { return r.err }

// Value returns the value, which is the zero T for a failed build.
func (r BuildResult[T]) Value() T { return r.value }

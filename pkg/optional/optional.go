package optional

// Option holds either a value (Some) or nothing (None).
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v as a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent value of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// NonEmpty returns None for the empty string and Some(s) otherwise.
func NonEmpty(s string) Option[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}

// FromEnv looks key up with lookup. Unset and empty variables are both None.
func FromEnv(lookup func(string) (string, bool), key string) Option[string] {
	if lookup == nil {
		return None[string]()
	}
	v, ok := lookup(key)
	if !ok {
		return None[string]()
	}
	return NonEmpty(v)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.ok }

// OrElse returns the value if present, def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Zip calls f with the values of a and b if and only if both are present.
// If either is absent the result is None and f is not called. If f itself
// returns None, so does Zip.
func Zip[A, B, C any](a Option[A], b Option[B], f func(A, B) Option[C]) Option[C] {
	av, ok := a.Get()
	if !ok {
		return None[C]()
	}
	bv, ok := b.Get()
	if !ok {
		return None[C]()
	}
	return f(av, bv)
}

// Map applies f to the value of o when present.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	v, ok := o.Get()
	if !ok {
		return None[B]()
	}
	return Some(f(v))
}

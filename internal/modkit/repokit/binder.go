package repokit

// Binder hands out a repo over q, which is either the pool or an open transaction
type Binder[T any] interface {
	Bind(q Queryer) T
}

// BindFunc lets a plain function serve as a Binder
type BindFunc[T any] func(Queryer) T

func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

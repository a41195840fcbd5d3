package module

import "fmt"

// PortsOf asserts m.Ports() to T, accepting a *T as well
func PortsOf[T any](m Module) (T, bool) {
	switch p := m.Ports().(type) {
	case T:
		return p, true
	case *T:
		if p != nil {
			return *p, true
		}
	}
	var zero T
	return zero, false
}

// MustPortsOf is PortsOf for wiring at startup, where a missing port is a programming error
func MustPortsOf[T any](m Module) T {
	p, ok := PortsOf[T](m)
	if !ok {
		panic(fmt.Sprintf("module %s: ports are %T, not %T", m.Name(), m.Ports(), p))
	}
	return p
}

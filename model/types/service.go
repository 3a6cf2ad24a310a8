package types

// Service is the contract every execution backend implements. A backend
// exposes named methods with typed inputs and outputs; the dispatcher selects
// a backend by action kind and invokes it through this interface.
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}

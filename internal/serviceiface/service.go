package serviceiface

// Service is a unit the app manager starts in start_order and stops in reverse.
type Service interface {
	Name() string
	Start() error
	Stop() error
}

package session

type Option func(*Service)

// WithRunnerFactory overrides how session runners are created.
func WithRunnerFactory(factory RunnerFactory) Option {
	return func(s *Service) {
		s.factory = factory
	}
}

// WithHost sets the host new sessions run against.
func WithHost(host *Host) Option {
	return func(s *Service) {
		s.host = host
	}
}

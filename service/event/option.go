package event

import "github.com/codelab/tutor/service/messaging/memory"

type Option func(*Service)

// WithQueueConfig overrides the per-queue configuration factory.
func WithQueueConfig(provider func(name string) memory.Config) Option {
	return func(s *Service) {
		s.newQueueConfig = provider
	}
}

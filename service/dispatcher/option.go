package dispatcher

// Option customises the dispatcher.
type Option func(*Service)

// WithSessionPool enables routing of non-sandboxed commands to the
// terminal session pool.
func WithSessionPool(enabled bool) Option {
	return func(s *Service) {
		s.sessionEnabled = enabled
	}
}

// WithDefaultSession sets the session commands run in when an action
// names none.
func WithDefaultSession(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.defaultSession = name
		}
	}
}

// WithNotifyBusy makes busy-session rejections visible on the notify
// side-channel instead of silent.
func WithNotifyBusy(enabled bool) Option {
	return func(s *Service) {
		s.notifyBusy = enabled
	}
}

// WithSuppressDirectives toggles the warning-suppression prelude
// prepended to fetched sources.
func WithSuppressDirectives(enabled bool) Option {
	return func(s *Service) {
		s.suppressDirectives = enabled
	}
}

// WithSuppressWarnings toggles the output warning suppressor.
func WithSuppressWarnings(enabled bool) Option {
	return func(s *Service) {
		s.suppressor.SetEnabled(enabled)
	}
}

// WithBrowserOpener sets the URL side-channel.
func WithBrowserOpener(openURL SideChannel) Option {
	return func(s *Service) {
		if openURL != nil {
			s.openURL = openURL
		}
	}
}

// WithFileViewer sets the file viewer side-channel.
func WithFileViewer(loadFile SideChannel) Option {
	return func(s *Service) {
		if loadFile != nil {
			s.loadFile = loadFile
		}
	}
}

// WithNotifier sets the notification side-channel.
func WithNotifier(notify SideChannel) Option {
	return func(s *Service) {
		if notify != nil {
			s.notify = notify
		}
	}
}

// WithTranscriptAppender sets the append-only transcript callback.
func WithTranscriptAppender(appender SideChannel) Option {
	return func(s *Service) {
		if appender != nil {
			s.appender = appender
		}
	}
}

package scanner

type Option func(*Scanner)

func WithProgress(fn func(int)) Option {
	return func(s *Scanner) {
		s.progress = fn
	}
}

package cascade

type Option func(*Provider)

func WithProgress(fn func(int)) Option {
	return func(p *Provider) {
		p.progress = fn
	}
}

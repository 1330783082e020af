package pattern

type Option func(*Detector)

func WithPhrases(phrases ...string) Option {
	return func(d *Detector) {
		d.phrases = phrases
	}
}

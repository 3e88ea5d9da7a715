package flatten

// Option configures a Flattener.
type Option func(*Flattener)

// WithLogger sets the logger used for diagnostics during the walk.
// A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(f *Flattener) {
		f.Logger = l
	}
}

// WithPrefix makes every emitted path start with prefix, as if the schema
// were nested under a property of that name.
func WithPrefix(prefix string) Option {
	return func(f *Flattener) {
		f.Prefix = prefix
	}
}

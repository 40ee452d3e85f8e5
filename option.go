package rbtree

// Option configures a tree at creation.
type Option func(*options)

type options struct {
	maxNodes        int
	initialCapacity int
	keyCopy         any
}

// WithMaxNodes bounds the number of live entries. An insert past the bound
// fails with ErrOutOfMemory. Zero means unbounded.
func WithMaxNodes(n int) Option {
	return func(o *options) { o.maxNodes = n }
}

// WithInitialCapacity pre-sizes the node arena for n entries.
func WithInitialCapacity(n int) Option {
	return func(o *options) { o.initialCapacity = n }
}

// WithKeyCopy makes Insert store keyCopy(key) instead of key, so the tree
// owns keys whose type shares memory with the caller. The type parameter
// must match the tree's key type.
func WithKeyCopy[K any](keyCopy func(key K) K) Option {
	return func(o *options) { o.keyCopy = keyCopy }
}

func buildOptions(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	if o.maxNodes < 0 || o.initialCapacity < 0 {
		return o, ErrInvalidArgument
	}
	if uint64(o.maxNodes) > maxArenaNodes {
		return o, ErrInvalidArgument
	}
	return o, nil
}

package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. Useful
// when one cache backend is shared between unrelated game builds: keys
// scoped per build cannot collide even when sweep options match.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "build:v1.21:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SweepKey generates a prefixed key for sweep results.
func (k *ScopedKeyer) SweepKey(positionsHash string, opts SweepKeyOpts) string {
	return k.prefix + k.inner.SweepKey(positionsHash, opts)
}

// GraphKey generates a prefixed key for built graphs.
func (k *ScopedKeyer) GraphKey(recordsHash string, opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(recordsHash, opts)
}

// ArtifactKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, opts)
}

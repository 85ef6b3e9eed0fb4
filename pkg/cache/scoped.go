package cache

// ScopedKeyer wraps a Keyer with a prefix, giving separate cache namespaces
// to different tenants or grid instances sharing one backend.
//
// Example usage:
//
//	// Per-instance keys on a shared Redis
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "dashboard:42:")
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

// LayoutKey generates a prefixed key for a resolved layout.
func (k *ScopedKeyer) LayoutKey(configHash string) string {
	return k.prefix + k.inner.LayoutKey(configHash)
}

// ReplayKey generates a prefixed key for a replay result.
func (k *ScopedKeyer) ReplayKey(configHash, traceHash string) string {
	return k.prefix + k.inner.ReplayKey(configHash, traceHash)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}

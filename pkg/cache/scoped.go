package cache

// ScopedKeyer wraps a Keyer with a prefix so that separate namespaces can
// share one backend. The CLI scopes keys by release version so that results
// computed by an older build are never served by a newer one.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
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

// ResultKey generates a prefixed result key.
func (k *ScopedKeyer) ResultKey(tableHash string, opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(tableHash, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(tableHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(tableHash, opts)
}

// ABOUTME: Namespace sources owned by a Factory: monotonic counter or UUID tokens
// ABOUTME: Every overlay instance gets a fresh token labelling its registrations

package fly

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// NamespaceSource hands out unique instance namespaces.
type NamespaceSource interface {
	Next() string
}

// Counter is a monotonic NamespaceSource producing prefix0, prefix1, ...
type Counter struct {
	prefix string
	n      atomic.Uint64
}

// NewCounter creates a Counter. An empty prefix defaults to "ns".
func NewCounter(prefix string) *Counter {
	if prefix == "" {
		prefix = "ns"
	}
	return &Counter{prefix: prefix}
}

// Next implements NamespaceSource.
func (c *Counter) Next() string {
	return c.prefix + strconv.FormatUint(c.n.Add(1)-1, 10)
}

type uuidSource struct{}

func (uuidSource) Next() string {
	return "ns-" + uuid.NewString()
}

// UUIDNamespaces returns a NamespaceSource of random UUID tokens, for
// factories whose instances must not collide across processes.
func UUIDNamespaces() NamespaceSource {
	return uuidSource{}
}

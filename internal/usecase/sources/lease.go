package sources

import "context"

// Lease grants exclusive use of a collaborator that cannot serve two callers
// at once, such as a single browser session.
type Lease struct {
	slot chan struct{}
}

func NewLease() *Lease {
	return &Lease{slot: make(chan struct{}, 1)}
}

// Acquire blocks until the lease is free or ctx is done. The returned
// release must be called exactly once.
func (l *Lease) Acquire(ctx context.Context) (release func(), err error) {
	select {
	case l.slot <- struct{}{}:
		return func() { <-l.slot }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

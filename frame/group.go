package frame

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group runs one loop per element and tears them all down together.
type Group struct {
	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
	sched  Scheduler
}

func NewGroup(ctx context.Context, sched Scheduler) *Group {
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	return &Group{
		group:  g,
		ctx:    ctx,
		cancel: cancel,
		sched:  sched,
	}
}

// Go starts a loop for step.
func (g *Group) Go(step Step) {
	g.group.Go(func() error {
		return g.sched.Run(g.ctx, step)
	})
}

// Cancel tears down every loop of the group and waits for them to return.
func (g *Group) Cancel() error {
	g.cancel()
	return g.group.Wait()
}

// Wait blocks until every loop settled or the group is cancelled.
func (g *Group) Wait() error {
	defer g.cancel()
	return g.group.Wait()
}

package mock

import (
	"context"

	"github.com/zjregee/knowlix"
)

var _ knowlix.Describer = (*Describer)(nil)

// Describer is a mock implementation of knowlix.Describer.
type Describer struct {
	DescribeFn func(ctx context.Context, item knowlix.Item) (string, error)
}

func (d *Describer) Describe(ctx context.Context, item knowlix.Item) (string, error) {
	return d.DescribeFn(ctx, item)
}

package conversation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Append-only log
	Append(ctx context.Context, input AppendInput) (AppendOutput, error)

	// Inspection
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Stats(ctx context.Context) (StatsOutput, error)
}

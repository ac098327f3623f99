package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Pipeline
	Send(ctx context.Context, input SendInput) (SendOutput, error)

	// Training and model inspection
	Train(ctx context.Context) (TrainOutput, error)
	ModelInfo(ctx context.Context) (ModelInfoOutput, error)
}

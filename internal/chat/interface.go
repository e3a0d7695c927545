package chat

import "context"

// UseCase orchestrates one chat turn: sentiment, intent, generative reply
// and the escalation decision.
type UseCase interface {
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}

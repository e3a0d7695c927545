package gateway

import "context"

// Completer is the single dependency orchestrators have on the remote
// language model. One call is one completion round trip.
//
// Complete never returns an error: upstream failures are absorbed into
// sentinel text beginning with ErrorPrefix so that downstream coercion can
// degrade into documented fallback values instead of aborting a request.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float64) string
}

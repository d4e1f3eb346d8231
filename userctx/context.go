package userctx

import "context"

// Context key type
type contextKey string

const actorKey contextKey = "actor"

// DefaultActor is recorded when nothing identified the caller.
const DefaultActor = "anonymous"

// SetActor records who issued the current command
func SetActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor retrieves the command issuer from context
func GetActor(ctx context.Context) string {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok || actor == "" {
		return DefaultActor
	}
	return actor
}

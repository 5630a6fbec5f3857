// Package guard holds the two checks every mutating endpoint shares: the
// load, ownership check and mutate sequence, and the idempotent toggle.
package guard

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
)

// Authorize loads a document and checks that actor owns it. A missing
// document is NotFound even when the actor would not own it.
func Authorize[T model.Owned](ctx context.Context, actor int64, action string, load func(context.Context) (T, error)) (T, error) {
	doc, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if doc.GetOwnerID() != actor {
		var zero T
		return zero, errno.ForbiddenErr.WithMessage("You are not authorized to " + action + " this " + doc.Kind())
	}
	return doc, nil
}

// Apply runs mutate only after Authorize succeeds.
func Apply[T model.Owned](ctx context.Context, actor int64, action string, load func(context.Context) (T, error), mutate func(context.Context, T) error) (T, error) {
	doc, err := Authorize(ctx, actor, action, load)
	if err != nil {
		return doc, err
	}
	if err := mutate(ctx, doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// Toggle flips a relation: it removes it when present and creates it
// otherwise, calling exactly one of remove or create. The result is the
// state after the call.
func Toggle(ctx context.Context, exists func(context.Context) (bool, error), remove, create func(context.Context) error) (bool, error) {
	ok, err := exists(ctx)
	if err != nil {
		return false, err
	}
	if ok {
		if err := remove(ctx); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := create(ctx); err != nil {
		return false, err
	}
	return true, nil
}

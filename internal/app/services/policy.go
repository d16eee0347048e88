package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/campus/internal/app/repositories"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

// The helpers below hold the lookup, parent resolution and patch rules shared
// by every entity service.

// findOrNotFound runs find and turns a store miss into a NotFound error carrying msg.
func findOrNotFound[K any, T any](ctx context.Context, find func(context.Context, K) (*T, error), key K, msg string) (*T, error) {
	record, err := find(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError(msg)
		}
		return nil, err
	}
	return record, nil
}

// resolveParent replaces a parent reference by the stored record.
// A missing id yields InvalidArgument with missingMsg, an unknown id NotFound with notFoundMsg.
func resolveParent[P any](ctx context.Context, find func(context.Context, int64) (*P, error), id int64, missingMsg, notFoundMsg string) (*P, error) {
	if id <= 0 {
		return nil, apperrors.NewInvalidArgumentError(missingMsg)
	}
	return findOrNotFound(ctx, find, id, notFoundMsg)
}

// mergeString overwrites *dst with v unless v is empty.
func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// emptyIfNil keeps list results JSON-encodable as [] rather than null.
func emptyIfNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}

// deleteGuard maps a delete blocked by referencing rows to a Conflict error.
func deleteGuard(err error, conflict error) error {
	if errors.Is(err, repositories.ErrHasDependents) {
		return apperrors.NewConflictError(conflict.Error())
	}
	return err
}

// warnIfNotFound logs NotFound outcomes at warn level; other errors are logged where they are handled.
func warnIfNotFound(log zerolog.Logger, err error) {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		log.Warn().Msg(err.Error())
	}
}

// parentGone maps a save rejected by a foreign key to NotFound with msg.
func parentGone(err error, msg string) error {
	if errors.Is(err, repositories.ErrParentMissing) {
		return apperrors.NewResourceNotFoundError(msg)
	}
	return err
}

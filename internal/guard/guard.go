// Package guard consolidates the tenant-scoped mutation checks that every
// resource handler runs before touching the database: tenant isolation,
// referential validation and soft-delete dependency counting.
package guard

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Tenanted is any document that carries a company scope.
type Tenanted interface {
	Tenant() bson.ObjectID
}

// Fetch loads the mutation target and enforces tenant isolation: a missing
// document maps to 404 and a cross-tenant document to 403. Every update and
// delete handler calls this before reading the request body any further.
func Fetch[T Tenanted](ctx context.Context, find func(context.Context) (T, error), viewer bson.ObjectID, resource string) (T, error) {
	doc, err := find(ctx)
	if err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, NotFound(fmt.Sprintf("%s not found", resource))
		}
		return zero, err
	}
	if doc.Tenant() != viewer {
		var zero T
		return zero, Forbidden("Access denied")
	}
	return doc, nil
}

// Reference validates a foreign reference supplied in a payload: it must
// resolve to an existing document in the caller's tenant. Anything else is
// a 400 naming the referenced thing, matching the per-route checks this
// package replaces.
func Reference[T Tenanted](ctx context.Context, find func(context.Context) (T, error), viewer bson.ObjectID, label string) (T, error) {
	doc, err := find(ctx)
	if err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, BadRequest("Invalid " + label)
		}
		return zero, err
	}
	if doc.Tenant() != viewer {
		var zero T
		return zero, BadRequest("Invalid " + label)
	}
	return doc, nil
}

// SelfParent rejects a hierarchy reference that points at the entity being
// mutated. Only the direct case is checked; deeper cycles through the
// hierarchy are not detected, mirroring the behaviour of the routes this
// replaces.
func SelfParent(ref, own bson.ObjectID, resource string) error {
	if ref == own {
		return BadRequest(fmt.Sprintf("%s cannot be its own parent", resource))
	}
	return nil
}

// Dependency is one class of records that blocks a soft delete while any
// remain active.
type Dependency struct {
	// Label names the dependents in the rejection message, e.g.
	// "active employee(s)".
	Label string
	// Remedy tells the caller what to do, e.g. "Please reassign them first."
	Remedy string
	Count  func(context.Context) (int64, error)
}

// Dependents runs the delete guard: the first dependency with a non-zero
// active count rejects the delete with the count interpolated into the
// message. The count and the subsequent status flip are not atomic; a
// dependent inserted concurrently can slip through the window.
func Dependents(ctx context.Context, resource string, deps ...Dependency) error {
	for _, d := range deps {
		n, err := d.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return BadRequest(fmt.Sprintf("Cannot delete %s. It has %d %s. %s", resource, n, d.Label, d.Remedy))
		}
	}
	return nil
}

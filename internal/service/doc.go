// Package service sits between internal/api and internal/store. Every
// entity is served by the same generic ResourceService, parameterized with
// the entity's domain.Resource metadata, so behavior such as existence
// gating for mutations and pagination arithmetic is written once.
//
// Services return domain errors (domain.NotFoundError, domain.ValidationError)
// and store errors (store.ErrInvalidEntity, store.ErrDuplicate) unchanged.
// Any other failure is wrapped in a ServiceError naming the operation.
package service

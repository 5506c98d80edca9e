// Package api exposes the resource services over HTTP. Handlers are generic
// over the entity type: one ResourceHandler serves list, get, create, update
// and delete for any domain.Resource, and one RelationHandler serves every
// relation listing. Query parameters, path ids and JSON bodies are validated
// here; all errors are rendered by ErrorHandler.
package api

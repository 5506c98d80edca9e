// Package store defines the persistence contracts for the wiki's entities.
// The interfaces are generic over the entity type so one PostgreSQL
// implementation serves every resource; callers never see SQL or driver
// errors, only the sentinel errors declared here.
package store

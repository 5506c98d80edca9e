// Package domain contains the entities served by the API and the metadata
// that maps each of them onto its table: searchable column, sortable columns,
// writable columns and the payload used to create or update a row.
//
// Every entity is described by a Resource value. The persistence, service and
// HTTP layers are written once against Resource and instantiated per entity.
package domain

// Package testdb provides a migrated PostgreSQL database for integration
// tests.
//
// Open connects to SWAPI_TEST_DATABASE_URL when it is set (CI provides a
// service container) and otherwise starts a disposable container with
// testcontainers-go. Tests isolate their writes with WithTx, which always
// rolls back:
//
//	db := testdb.Open(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    planets := postgres.NewResourceStore(tx, domain.Planets, nil)
//	    // ...
//	})
//
// The package only builds with the integration tag.
package testdb

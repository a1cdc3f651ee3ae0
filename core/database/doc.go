// Package database manages the optional MySQL connection used as the
// database-backed persistence backend.
//
// The connection is established through GORM with conservative pool settings
// and verified with a ping before it is handed to the blob store. The server
// falls back to object storage when the database is unreachable, so Connect
// errors are warnings rather than fatal.
package database

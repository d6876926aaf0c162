package booking

import "github.com/broomaam/BAAM-BookingService/pkg/dbmetrics"

// DBExecutor is the database handle the repository works with.
// Supports *sql.DB and *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor

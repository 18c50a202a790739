package reservationchange

import "github.com/m04kA/SMC-ReservationCore/pkg/dbmetrics"

// DBExecutor *sql.DB, *dbmetrics.DB или транзакция
type DBExecutor = dbmetrics.DBExecutor

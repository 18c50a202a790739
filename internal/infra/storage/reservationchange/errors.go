package reservationchange

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование для записи истории не существует
	ErrReservationNotFound = errors.New("reservationchange.repository: reservation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservationchange.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservationchange.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservationchange.repository: failed to scan row")
)

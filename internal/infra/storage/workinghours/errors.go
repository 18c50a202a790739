package workinghours

import "errors"

var (
	// ErrInstanceNotFound возвращается, когда инстанс (мойка) не найден
	ErrInstanceNotFound = errors.New("workinghours.repository: instance not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workinghours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workinghours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workinghours.repository: failed to scan row")

	// ErrDecode возвращается, когда working_hours в БД не является валидным JSON
	ErrDecode = errors.New("workinghours.repository: failed to decode working hours")
)

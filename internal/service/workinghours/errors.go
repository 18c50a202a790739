package workinghours

import "errors"

var (
	// ErrInstanceNotFound возвращается, когда инстанс не найден
	ErrInstanceNotFound = errors.New("instance not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package get_time_slots

import "errors"

var (
	// ErrInstanceNotFound возвращается, когда инстанс не найден
	ErrInstanceNotFound = errors.New("instance not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStep возвращается, когда шаг слотов вне допустимого диапазона
	ErrInvalidStep = errors.New("invalid slot step")

	// ErrInvalidWindow возвращается при некорректном ручном окне
	ErrInvalidWindow = errors.New("invalid override window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

package supabase

import "errors"

var (
	// ErrInstanceNotFound возвращается, когда инстанс не найден
	ErrInstanceNotFound = errors.New("supabase client: instance not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("supabase client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("supabase client: invalid response")
)

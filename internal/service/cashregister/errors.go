package cashregister

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате отчёта
	ErrInvalidDate = errors.New("invalid date")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cashregister: internal error")
)

package availability

import "errors"

// ErrInvalidArgument возвращается при некорректных входных данных расчёта:
// неположительная длительность, закрытие не позже открытия, некорректный день или время
var ErrInvalidArgument = errors.New("availability: invalid argument")

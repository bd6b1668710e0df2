package world

import "errors"

// Ошибки операций с миром. Все они локальные и восстановимые:
// вызывающий код сравнивает их через errors.Is и решает, что делать дальше.
var (
	ErrInvalidCoordinate = errors.New("coordinate outside world bounds")
	ErrDuplicateBlock    = errors.New("block already exists at coordinate")
	ErrIndestructible    = errors.New("block is indestructible")
	ErrNoBlock           = errors.New("no block at coordinate")
	ErrAirPlacement      = errors.New("cannot place air")
	ErrSelfPlacement     = errors.New("target intersects occupant volume")
	ErrInvalidRadius     = errors.New("generation radius must not be negative")
	ErrPassInProgress    = errors.New("generation pass already in progress")
	ErrInvalidBudget     = errors.New("tick budget must be positive")
)

package usecase

import (
	"errors"
	"fmt"
)

// Error classes. Handlers classify with errors.Is against these.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBackend            = errors.New("backend request failed")
)

var (
	ErrRepairJobNotFound = fmt.Errorf("repair job %w", ErrNotFound)
	ErrStockItemNotFound = fmt.Errorf("stock item %w", ErrNotFound)
	ErrTagNotFound       = fmt.Errorf("job tag %w", ErrNotFound)
)

var (
	ErrInvalidJobID         = fmt.Errorf("%w: invalid job id", ErrValidation)
	ErrInvalidStatus        = fmt.Errorf("%w: invalid repair status", ErrValidation)
	ErrInvalidEstimatedCost = fmt.Errorf("%w: estimated cost must not be negative", ErrValidation)
	ErrInvalidStockName     = fmt.Errorf("%w: stock item name is required", ErrValidation)
	ErrInvalidStockQuantity = fmt.Errorf("%w: stock quantity must not be negative", ErrValidation)
	ErrInvalidStockPrice    = fmt.Errorf("%w: stock price must not be negative", ErrValidation)
	ErrInvalidQuantity      = fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	ErrInvalidBatchSize     = fmt.Errorf("%w: tag batch size must be between 1 and 500", ErrValidation)
	ErrEmptyTagQueue        = fmt.Errorf("%w: tag queue is empty", ErrValidation)
	ErrInvalidPhoto         = fmt.Errorf("%w: photo is empty", ErrValidation)
)

var (
	ErrNoTagDetected     = errors.New("no job tag detected")
	ErrCameraUnavailable = errors.New("camera unavailable")
)

package services

import (
	"errors"

	"github.com/banit/househunt-backend/internal/repository"
)

var (
	ErrNotFound     = repository.ErrNotFound
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("already exists")
)

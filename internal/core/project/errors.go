package project

import "errors"

var (
	ErrInvalidID         = errors.New("project: invalid id")
	ErrInvalidTenantID   = errors.New("project: invalid tenant id")
	ErrInvalidName       = errors.New("project: invalid name")
	ErrInvalidCode       = errors.New("project: invalid code")
	ErrInvalidStatus     = errors.New("project: invalid status")
	ErrInvalidPageSize   = errors.New("project: invalid page size")
	ErrInvalidPageToken  = errors.New("project: invalid page token")
	ErrProjectNotFound   = errors.New("project: not found")
	ErrCodeAlreadyExists = errors.New("project: code already exists")
	ErrTenantIsolation   = errors.New("project: cross-tenant access is not allowed")
)

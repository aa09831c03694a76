package project

import "time"

// Status はプロジェクトの状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Project はプロジェクトエンティティです。チームレジストリの親にあたります。
type Project struct {
	ID          string
	TenantID    string
	Name        string
	Code        string
	Status      Status
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

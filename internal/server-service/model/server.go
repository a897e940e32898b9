package model

import "time"

const (
	ServerStatusUp   = "UP"
	ServerStatusDown = "DOWN"
)

type Server struct {
	ID         uint   `gorm:"primaryKey"`
	IpAddress  string `gorm:"uniqueIndex:servers_ip_address_key;not null"`
	Name       string
	MemorySize string
	OsType     string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package models

import "time"

// User is the account record this service reads but never writes.
// Account creation and profile management belong to the auth service;
// posts and comments only expose the creator projection (id, username,
// profile picture) from this table.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"size:64;not null" json:"username"`
	Email          string    `gorm:"size:255" json:"-"`
	ProfilePicture string    `gorm:"size:512" json:"profilePicture"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

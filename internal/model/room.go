package model

import "time"

// Room is a bookable room with a fixed number of beds.
// Available is maintained exclusively by the booking engine and always
// equals Capacity minus the count of active bookings on the room.
type Room struct {
	ID         int64  `gorm:"primaryKey"`
	RoomNumber string `gorm:"uniqueIndex;size:32;not null"`
	Capacity   int    `gorm:"not null"`
	Available  int    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

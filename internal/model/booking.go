package model

import "time"

// BookingStatus is the lifecycle state of a booking. The transition
// active -> cancelled is one-way; a cancelled booking is never reactivated.
type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking records one student holding one bed in one room. Re-booking
// after a cancellation creates a new record.
type Booking struct {
	ID        int64         `gorm:"primaryKey;autoIncrement"`
	StudentID int64         `gorm:"index;not null"`
	RoomID    int64         `gorm:"index;not null"`
	Status    BookingStatus `gorm:"size:16;index;not null"`
	CreatedAt time.Time     `gorm:"not null"`

	// Associations
	Student Student `gorm:"foreignKey:StudentID"`
	Room    Room    `gorm:"foreignKey:RoomID"`
}

package store

import (
	"time"

	"hostel-booking-backend/internal/model"
)

// BookingView is a student's active booking joined with the room number.
type BookingView struct {
	ID         int64               `json:"id"`
	Status     model.BookingStatus `json:"status"`
	CreatedAt  time.Time           `json:"createdAt"`
	RoomNumber string              `json:"roomNumber"`
}

// AdminBookingView is one row of the admin booking listing, joined across
// bookings, students and rooms.
type AdminBookingView struct {
	ID           int64               `json:"id"`
	Status       model.BookingStatus `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	StudentName  string              `json:"studentName"`
	StudentEmail string              `json:"studentEmail"`
	RoomNumber   string              `json:"roomNumber"`
}

// Package booking implements the transactional core of the hostel
// service: reserving and releasing beds while keeping each room's
// availability counter consistent with the set of active bookings.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hostel-booking-backend/internal/model"
	"hostel-booking-backend/internal/store"
)

// ErrAlreadyBooked is returned when a student with an active booking
// tries to reserve another bed.
var ErrAlreadyBooked = errors.New("you already have an active booking")

// ErrRoomUnavailable is returned when the target room is missing or has
// no beds left. The two cases are deliberately not distinguished.
var ErrRoomUnavailable = errors.New("room not available")

// ErrNoActiveBooking is returned by Release when there is nothing to cancel.
var ErrNoActiveBooking = errors.New("no active booking")

// ErrDuplicateRoom is returned when a room number is already taken.
var ErrDuplicateRoom = errors.New("room already exists")

// IsDomainErr reports whether err is one of the expected business
// failures, as opposed to a storage failure.
func IsDomainErr(err error) bool {
	return errors.Is(err, ErrAlreadyBooked) ||
		errors.Is(err, ErrRoomUnavailable) ||
		errors.Is(err, ErrNoActiveBooking) ||
		errors.Is(err, ErrDuplicateRoom)
}

// Engine orchestrates reads and writes across the room inventory and the
// booking ledger as atomic units. It never caches state between calls;
// every operation re-reads inside its own transaction.
type Engine struct {
	store store.Store
}

// NewEngine creates a booking engine on top of the given store.
func NewEngine(s store.Store) *Engine {
	return &Engine{store: s}
}

// Reserve books one bed in the given room for the student and returns the
// room number for confirmation. The availability decrement is a single
// conditional statement, so two concurrent Reserve calls racing for the
// last bed resolve to exactly one success.
func (e *Engine) Reserve(ctx context.Context, studentID, roomID int64) (string, error) {
	var roomNumber string
	err := e.store.Transaction(ctx, func(tx store.Store) error {
		existing, err := tx.ActiveBookingByStudent(ctx, studentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyBooked
		}

		room, err := tx.RoomByID(ctx, roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomUnavailable
		}

		taken, err := tx.ReserveBed(ctx, roomID)
		if err != nil {
			return err
		}
		if !taken {
			return ErrRoomUnavailable
		}

		if err := tx.InsertBooking(ctx, &model.Booking{
			StudentID: studentID,
			RoomID:    roomID,
			Status:    model.BookingActive,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}

		roomNumber = room.RoomNumber
		return nil
	})
	if err != nil {
		return "", err
	}
	return roomNumber, nil
}

// Release cancels the student's active booking and frees its bed,
// returning the id of the room that regained availability.
func (e *Engine) Release(ctx context.Context, studentID int64) (int64, error) {
	var roomID int64
	err := e.store.Transaction(ctx, func(tx store.Store) error {
		active, err := tx.ActiveBookingByStudent(ctx, studentID)
		if err != nil {
			return err
		}
		if active == nil {
			return ErrNoActiveBooking
		}

		cancelled, err := tx.CancelBooking(ctx, active.ID)
		if err != nil {
			return err
		}
		if !cancelled {
			// Another request cancelled it between the read and the update.
			return ErrNoActiveBooking
		}

		freed, err := tx.FreeBed(ctx, active.RoomID)
		if err != nil {
			return err
		}
		if !freed {
			// Each active booking holds exactly one bed below capacity,
			// so the increment must always apply.
			return fmt.Errorf("room %d availability already at capacity", active.RoomID)
		}

		roomID = active.RoomID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return roomID, nil
}

// CurrentBooking returns the student's active booking joined with its
// room number, or nil when there is none.
func (e *Engine) CurrentBooking(ctx context.Context, studentID int64) (*store.BookingView, error) {
	return e.store.ActiveBookingView(ctx, studentID)
}

// ListAll returns every booking with student and room details, most
// recent first.
func (e *Engine) ListAll(ctx context.Context) ([]store.AdminBookingView, error) {
	return e.store.ListBookingsJoined(ctx)
}

// ListRooms returns all rooms ordered by room number.
func (e *Engine) ListRooms(ctx context.Context) ([]model.Room, error) {
	return e.store.ListRooms(ctx)
}

// AddRoom inserts a new room. The duplicate check runs in the same
// transaction as the insert; the unique index on room_number backs it up.
func (e *Engine) AddRoom(ctx context.Context, number string, capacity, available int) error {
	if number == "" {
		return fmt.Errorf("room number is required")
	}
	if capacity < 1 {
		return fmt.Errorf("capacity must be at least 1")
	}
	if available < 0 || available > capacity {
		return fmt.Errorf("available must be between 0 and capacity")
	}

	return e.store.Transaction(ctx, func(tx store.Store) error {
		exists, err := tx.RoomNumberExists(ctx, number)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateRoom
		}
		return tx.InsertRoom(ctx, &model.Room{
			RoomNumber: number,
			Capacity:   capacity,
			Available:  available,
		})
	})
}

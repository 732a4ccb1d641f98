package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hostel-booking-backend/internal/model"
)

// Store defines the persistence operations the booking engine composes
// into transactions. Every method is safe to call either on the root
// store or on the transactional store passed to the Transaction callback;
// the engine relies on the latter to keep its check-then-act sequences
// atomic.
type Store interface {
	// DB exposes the underlying handle for collaborators that run their
	// own queries (auth, notifications, subscription handlers).
	DB() *gorm.DB

	// Transaction runs fn inside a single database transaction. Returning
	// an error rolls back every write fn performed.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	RoomByID(ctx context.Context, id int64) (*model.Room, error)
	ListRooms(ctx context.Context) ([]model.Room, error)
	InsertRoom(ctx context.Context, room *model.Room) error
	RoomNumberExists(ctx context.Context, number string) (bool, error)

	// ReserveBed decrements a room's availability only while it is
	// positive, reporting whether a row changed. FreeBed is the inverse,
	// capped at capacity. Both are single conditional statements so a
	// lost update is impossible regardless of isolation level.
	ReserveBed(ctx context.Context, roomID int64) (bool, error)
	FreeBed(ctx context.Context, roomID int64) (bool, error)

	ActiveBookingByStudent(ctx context.Context, studentID int64) (*model.Booking, error)
	InsertBooking(ctx context.Context, booking *model.Booking) error
	// CancelBooking flips a booking to cancelled only if it is still
	// active, reporting whether a row changed.
	CancelBooking(ctx context.Context, bookingID int64) (bool, error)

	ActiveBookingView(ctx context.Context, studentID int64) (*BookingView, error)
	ListBookingsJoined(ctx context.Context) ([]AdminBookingView, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) RoomByID(ctx context.Context, id int64) (*model.Room, error) {
	var room model.Room
	err := s.db.WithContext(ctx).First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch room %d: %w", id, err)
	}
	return &room, nil
}

func (s *gormStore) ListRooms(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	if err := s.db.WithContext(ctx).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *gormStore) InsertRoom(ctx context.Context, room *model.Room) error {
	if err := s.db.WithContext(ctx).Create(room).Error; err != nil {
		return fmt.Errorf("insert room %q: %w", room.RoomNumber, err)
	}
	return nil
}

func (s *gormStore) RoomNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("room_number = ?", number).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check room number %q: %w", number, err)
	}
	return count > 0, nil
}

func (s *gormStore) ReserveBed(ctx context.Context, roomID int64) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("id = ? AND available > 0", roomID).
		UpdateColumn("available", gorm.Expr("available - 1"))
	if res.Error != nil {
		return false, fmt.Errorf("reserve bed in room %d: %w", roomID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *gormStore) FreeBed(ctx context.Context, roomID int64) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("id = ? AND available < capacity", roomID).
		UpdateColumn("available", gorm.Expr("available + 1"))
	if res.Error != nil {
		return false, fmt.Errorf("free bed in room %d: %w", roomID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *gormStore) ActiveBookingByStudent(ctx context.Context, studentID int64) (*model.Booking, error) {
	var booking model.Booking
	err := s.db.WithContext(ctx).
		Where("student_id = ? AND status = ?", studentID, model.BookingActive).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch active booking for student %d: %w", studentID, err)
	}
	return &booking, nil
}

func (s *gormStore) InsertBooking(ctx context.Context, booking *model.Booking) error {
	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("insert booking for student %d: %w", booking.StudentID, err)
	}
	return nil
}

func (s *gormStore) CancelBooking(ctx context.Context, bookingID int64) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("id = ? AND status = ?", bookingID, model.BookingActive).
		UpdateColumn("status", model.BookingCancelled)
	if res.Error != nil {
		return false, fmt.Errorf("cancel booking %d: %w", bookingID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *gormStore) ActiveBookingView(ctx context.Context, studentID int64) (*BookingView, error) {
	var view BookingView
	err := s.db.WithContext(ctx).
		Model(&model.Booking{}).
		Select("bookings.id, bookings.status, bookings.created_at, rooms.room_number").
		Joins("JOIN rooms ON bookings.room_id = rooms.id").
		Where("bookings.student_id = ? AND bookings.status = ?", studentID, model.BookingActive).
		Take(&view).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch booking view for student %d: %w", studentID, err)
	}
	return &view, nil
}

func (s *gormStore) ListBookingsJoined(ctx context.Context) ([]AdminBookingView, error) {
	var views []AdminBookingView
	err := s.db.WithContext(ctx).
		Model(&model.Booking{}).
		Select("bookings.id, bookings.status, bookings.created_at, students.name AS student_name, students.email AS student_email, rooms.room_number").
		Joins("JOIN students ON bookings.student_id = students.id").
		Joins("JOIN rooms ON bookings.room_id = rooms.id").
		Order("bookings.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return views, nil
}

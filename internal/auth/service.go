// Package auth handles account registration, credential checks and the
// in-memory session lifecycle.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hostel-booking-backend/internal/model"
)

// ErrEmailTaken is returned when registering with an email that exists.
var ErrEmailTaken = errors.New("email already exists")

// ErrInvalidCredentials is returned when email, password and role do not
// match an account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service verifies credentials against the student table and issues
// session tokens.
type Service struct {
	db       *gorm.DB
	sessions *SessionStore
}

// NewService creates an auth service.
func NewService(db *gorm.DB, sessions *SessionStore) *Service {
	return &Service{db: db, sessions: sessions}
}

// Register creates a student account. Credential storage mirrors the rest
// of the system's scope; hashing is out of scope here.
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("name, email and password are required")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Student{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if count > 0 {
			return ErrEmailTaken
		}
		if err := tx.Create(&model.Student{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     model.RoleStudent,
		}).Error; err != nil {
			return fmt.Errorf("insert student: %w", err)
		}
		return nil
	})
}

// Login checks the credentials for the given role and issues a token.
func (s *Service) Login(ctx context.Context, email, password string, role model.Role) (string, *model.Student, error) {
	if !role.Valid() {
		return "", nil, ErrInvalidCredentials
	}
	email = strings.TrimSpace(strings.ToLower(email))

	var student model.Student
	err := s.db.WithContext(ctx).
		Where("email = ? AND password = ? AND role = ?", email, password, role).
		First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("fetch account: %w", err)
	}

	token := s.sessions.Create(student.ID, student.Role)
	return token, &student, nil
}

// Logout drops the session behind a token, if any.
func (s *Service) Logout(token string) {
	if token != "" {
		s.sessions.Destroy(token)
	}
}

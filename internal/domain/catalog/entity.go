package catalog

import (
	"errors"
	"strings"
	"time"

	"slotbook/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("service name must be between 1 and 120 characters")
	ErrInvalidDuration = errors.New("service duration must be between 5 and 720 minutes")
	ErrInactive        = errors.New("service is not active")
)

const (
	MaxNameLength      = 120
	MinDurationMinutes = 5
	MaxDurationMinutes = 720
)

// Service is an entry in a business' catalog. Price and currency are fixed at
// creation; only name and duration may change afterwards.
type Service struct {
	id              uuid.UUID
	businessID      uuid.UUID
	name            string
	durationMinutes int
	price           booking.Money
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewService(businessID uuid.UUID, name string, durationMinutes int, priceCents int64, currency string, now time.Time) (*Service, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if err := validateDuration(durationMinutes); err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(priceCents, currency)
	if err != nil {
		return nil, err
	}
	return &Service{
		id:              uuid.New(),
		businessID:      businessID,
		name:            name,
		durationMinutes: durationMinutes,
		price:           price,
		isActive:        true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructService(
	id, businessID uuid.UUID,
	name string,
	durationMinutes int,
	price booking.Money,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:              id,
		businessID:      businessID,
		name:            name,
		durationMinutes: durationMinutes,
		price:           price,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Update applies a partial change; nil fields are left untouched.
func (s *Service) Update(name *string, durationMinutes *int, now time.Time) error {
	if name != nil {
		n, err := validateName(*name)
		if err != nil {
			return err
		}
		s.name = n
	}
	if durationMinutes != nil {
		if err := validateDuration(*durationMinutes); err != nil {
			return err
		}
		s.durationMinutes = *durationMinutes
	}
	s.updatedAt = now
	return nil
}

func (s *Service) Deactivate(now time.Time) {
	if !s.isActive {
		return
	}
	s.isActive = false
	s.updatedAt = now
}

// Snapshot is what a booking records about the service at creation time.
func (s *Service) Snapshot() (booking.ServiceSnapshot, error) {
	if !s.isActive {
		return booking.ServiceSnapshot{}, ErrInactive
	}
	return booking.NewServiceSnapshot(s.name, s.durationMinutes, s.price.Cents(), s.price.Currency())
}

func (s *Service) ID() uuid.UUID         { return s.id }
func (s *Service) BusinessID() uuid.UUID { return s.businessID }
func (s *Service) Name() string          { return s.name }
func (s *Service) DurationMinutes() int  { return s.durationMinutes }
func (s *Service) Price() booking.Money  { return s.price }
func (s *Service) IsActive() bool        { return s.isActive }
func (s *Service) CreatedAt() time.Time  { return s.createdAt }
func (s *Service) UpdatedAt() time.Time  { return s.updatedAt }

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}

func validateDuration(minutes int) error {
	if minutes < MinDurationMinutes || minutes > MaxDurationMinutes {
		return ErrInvalidDuration
	}
	return nil
}

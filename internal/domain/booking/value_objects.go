package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"slotbook/internal/domain/availability"
)

var (
	ErrMissingCustomerName  = errors.New("customer name is required")
	ErrMissingCustomerPhone = errors.New("customer phone is required")
	ErrCustomerNameTooLong  = errors.New("customer name exceeds 120 characters")
	ErrCustomerPhoneTooLong = errors.New("customer phone exceeds 40 characters")
	ErrInvalidCustomerEmail = errors.New("customer email is invalid")
	ErrNotesTooLong         = errors.New("notes exceed maximum length")
	ErrMissingServiceName   = errors.New("service name is required")
	ErrInvalidDuration      = errors.New("service duration must be between 1 and 1440 minutes")
	ErrNegativePrice        = errors.New("price cannot be negative")
	ErrInvalidCurrency      = errors.New("currency must be a 3-letter ISO code")
	ErrMissingStart         = errors.New("start time is required")
	ErrInvalidStatus        = errors.New("invalid booking status")
)

const (
	MaxNameLength  = 120
	MaxPhoneLength = 40
	MaxNotesLength = 1000
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ServiceSnapshot is copied into the booking at creation so later catalog
// edits do not change what the customer booked.
type ServiceSnapshot struct {
	name            string
	durationMinutes int
	price           Money
}

func NewServiceSnapshot(name string, durationMinutes int, priceCents int64, currency string) (ServiceSnapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ServiceSnapshot{}, ErrMissingServiceName
	}
	if durationMinutes <= 0 || durationMinutes > availability.MaxDurationMinutes {
		return ServiceSnapshot{}, ErrInvalidDuration
	}
	price, err := NewMoney(priceCents, currency)
	if err != nil {
		return ServiceSnapshot{}, err
	}
	return ServiceSnapshot{name: name, durationMinutes: durationMinutes, price: price}, nil
}

func (s ServiceSnapshot) Name() string            { return s.name }
func (s ServiceSnapshot) DurationMinutes() int    { return s.durationMinutes }
func (s ServiceSnapshot) Duration() time.Duration { return time.Duration(s.durationMinutes) * time.Minute }
func (s ServiceSnapshot) Price() Money            { return s.price }

type Money struct {
	cents    int64
	currency string
}

func NewMoney(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if !currencyRegex.MatchString(currency) {
		return Money{}, ErrInvalidCurrency
	}
	return Money{cents: cents, currency: currency}, nil
}

func (m Money) Cents() int64     { return m.cents }
func (m Money) Currency() string { return m.currency }

type Customer struct {
	name  string
	phone string
	email *string
	notes *string
}

func NewCustomer(name, phone string, email, notes *string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrMissingCustomerName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return Customer{}, ErrCustomerNameTooLong
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return Customer{}, ErrMissingCustomerPhone
	}
	if len(phone) > MaxPhoneLength {
		return Customer{}, ErrCustomerPhoneTooLong
	}

	c := Customer{name: name, phone: phone}
	if email != nil {
		if e := strings.TrimSpace(*email); e != "" {
			if !emailRegex.MatchString(e) {
				return Customer{}, ErrInvalidCustomerEmail
			}
			c.email = &e
		}
	}
	if notes != nil {
		if n := strings.TrimSpace(*notes); n != "" {
			if len(n) > MaxNotesLength {
				return Customer{}, ErrNotesTooLong
			}
			c.notes = &n
		}
	}
	return c, nil
}

func (c Customer) Name() string   { return c.name }
func (c Customer) Phone() string  { return c.phone }
func (c Customer) Email() *string { return c.email }
func (c Customer) Notes() *string { return c.notes }

// TimeRange is a half-open interval [start, end).
type TimeRange struct {
	start time.Time
	end   time.Time
}

func (r TimeRange) Start() time.Time { return r.start }
func (r TimeRange) End() time.Time   { return r.end }

func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

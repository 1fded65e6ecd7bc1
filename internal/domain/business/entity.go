package business

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName        = errors.New("business name is required")
	ErrInvalidSlug        = errors.New("slug must be 3-60 characters of lowercase letters, digits and hyphens")
	ErrInvalidCategory    = errors.New("invalid business category")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
)

const (
	MaxNameLength        = 120
	MaxDescriptionLength = 2000
)

var slugRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{1,58})[a-z0-9]$`)

type Category string

const (
	CategorySalon  Category = "salon"
	CategoryLash   Category = "lash"
	CategoryBarber Category = "barber"
	CategoryNails  Category = "nails"
	CategorySpa    Category = "spa"
	CategoryOther  Category = "other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategorySalon, CategoryLash, CategoryBarber, CategoryNails, CategorySpa, CategoryOther:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

type Slug struct {
	value string
}

func NewSlug(s string) (Slug, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slugRegex.MatchString(s) || strings.Contains(s, "--") {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: s}, nil
}

func (s Slug) String() string { return s.value }

// Business is a tenant: the owner's storefront that customers book against.
type Business struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	slug        Slug
	category    Category
	description *string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBusiness(ownerID uuid.UUID, name string, slug Slug, category Category, description *string, now time.Time) (*Business, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	var desc *string
	if description != nil {
		if d := strings.TrimSpace(*description); d != "" {
			if len(d) > MaxDescriptionLength {
				return nil, ErrDescriptionTooLong
			}
			desc = &d
		}
	}
	return &Business{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		slug:        slug,
		category:    category,
		description: desc,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBusiness(
	id, ownerID uuid.UUID,
	name string,
	slug Slug,
	category Category,
	description *string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Business {
	return &Business{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		slug:        slug,
		category:    category,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Business) ID() uuid.UUID        { return b.id }
func (b *Business) OwnerID() uuid.UUID   { return b.ownerID }
func (b *Business) Name() string         { return b.name }
func (b *Business) Slug() Slug           { return b.slug }
func (b *Business) Category() Category   { return b.category }
func (b *Business) Description() *string { return b.description }
func (b *Business) IsActive() bool       { return b.isActive }
func (b *Business) CreatedAt() time.Time { return b.createdAt }
func (b *Business) UpdatedAt() time.Time { return b.updatedAt }

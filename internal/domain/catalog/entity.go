package catalog

import (
	"strings"
	"time"

	"service-marketplace/internal/domain/money"
	"service-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle         = errs.Validation("service title cannot be empty")
	ErrTitleTooLong       = errs.Validation("service title is too long (max 255 characters)")
	ErrInvalidDuration    = errs.Validation("duration must be between 1 and 1440 minutes")
	ErrInvalidServiceType = errs.Validation("invalid service type")
	ErrServiceNotFound    = errs.NotFound("service not found")
	ErrServiceInactive    = errs.InvalidState("service is not active")
	ErrNotOwner           = errs.Forbidden("service belongs to another provider")
)

const (
	MaxTitleLength     = 255
	MaxDurationMinutes = 24 * 60
)

// Service is a bookable offering in the marketplace catalog.
type Service struct {
	id              uuid.UUID
	providerID      uuid.UUID
	title           string
	description     string
	price           money.Money
	durationMinutes int
	serviceType     ServiceType
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

type Attributes struct {
	Title           string
	Description     string
	Price           money.Money
	DurationMinutes int
	Type            ServiceType
}

func (a Attributes) validate() (Attributes, error) {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return a, ErrEmptyTitle
	}
	if len(a.Title) > MaxTitleLength {
		return a, ErrTitleTooLong
	}
	if a.DurationMinutes <= 0 || a.DurationMinutes > MaxDurationMinutes {
		return a, ErrInvalidDuration
	}
	if a.Type == "" {
		a.Type = TypeInPerson
	}
	return a, nil
}

func NewService(providerID uuid.UUID, attrs Attributes) (*Service, error) {
	attrs, err := attrs.validate()
	if err != nil {
		return nil, err
	}
	return &Service{
		id:              uuid.New(),
		providerID:      providerID,
		title:           attrs.Title,
		description:     attrs.Description,
		price:           attrs.Price,
		durationMinutes: attrs.DurationMinutes,
		serviceType:     attrs.Type,
		active:          true,
	}, nil
}

func ReconstructService(
	id, providerID uuid.UUID,
	title, description string,
	price money.Money,
	durationMinutes int,
	serviceType ServiceType,
	active bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:              id,
		providerID:      providerID,
		title:           title,
		description:     description,
		price:           price,
		durationMinutes: durationMinutes,
		serviceType:     serviceType,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (s *Service) Update(attrs Attributes) error {
	attrs, err := attrs.validate()
	if err != nil {
		return err
	}
	s.title = attrs.Title
	s.description = attrs.Description
	s.price = attrs.Price
	s.durationMinutes = attrs.DurationMinutes
	s.serviceType = attrs.Type
	return nil
}

func (s *Service) Deactivate() {
	s.active = false
}

func (s *Service) EnsureBookable() error {
	if !s.active {
		return ErrServiceInactive
	}
	return nil
}

func (s *Service) EnsureOwnedBy(providerID uuid.UUID) error {
	if s.providerID != providerID {
		return ErrNotOwner
	}
	return nil
}

func (s *Service) Attributes() Attributes {
	return Attributes{
		Title:           s.title,
		Description:     s.description,
		Price:           s.price,
		DurationMinutes: s.durationMinutes,
		Type:            s.serviceType,
	}
}

func (s *Service) ID() uuid.UUID            { return s.id }
func (s *Service) ProviderID() uuid.UUID    { return s.providerID }
func (s *Service) Title() string            { return s.title }
func (s *Service) Description() string      { return s.description }
func (s *Service) Price() money.Money       { return s.price }
func (s *Service) DurationMinutes() int     { return s.durationMinutes }
func (s *Service) Duration() time.Duration  { return time.Duration(s.durationMinutes) * time.Minute }
func (s *Service) ServiceType() ServiceType { return s.serviceType }
func (s *Service) IsActive() bool           { return s.active }
func (s *Service) CreatedAt() time.Time     { return s.createdAt }
func (s *Service) UpdatedAt() time.Time     { return s.updatedAt }

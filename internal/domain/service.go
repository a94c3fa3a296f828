package domain

import "time"

// Service represents a bookable barbershop service
type Service struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Duration    string // display label, e.g. "45 min"
	Image       string
	Active      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the service can be referenced by new appointments
func (s *Service) IsBookable() bool {
	return s.Active
}

// ServiceUpdate частичное обновление услуги; nil поля не изменяются
type ServiceUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *string
	Image       *string
	Active      *bool
}

// ServiceFilter фильтр для выборки услуг
type ServiceFilter struct {
	Active *bool // Фильтр по активности (опционально)
}

package entity

import "time"

// Customer un cliente del restaurante (fidelización y reservas).
type Customer struct {
	ID         string
	Name       string
	Phone      string
	Email      string
	Notes      string
	VisitCount int
	LastVisit  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

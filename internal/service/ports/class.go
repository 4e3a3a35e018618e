package ports

import (
	"context"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
)

type ClassRepo interface {
	Create(ctx context.Context, cl *domain.Class) error
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	List(ctx context.Context) ([]*domain.Class, error)
	// SeatsTaken is the seat sum over bookings in seat-counted statuses.
	SeatsTaken(ctx context.Context, classID string) (int, error)
	GetDetails(ctx context.Context, classID string) (*domain.ClassDetails, error)
}

package service

import (
	"context"

	"github.com/spec-kit/moderation-service/internal/domain"
	"github.com/spec-kit/moderation-service/internal/repository"
	apperrors "github.com/spec-kit/moderation-service/pkg/util"
)

// OrderService reads marketplace orders scoped to an entrepreneur
// principal. It is the second consumer of the invalidation contract: a
// listing one page-load after a mutation must observe the mutation.
type OrderService struct {
	orders repository.OrderRepository
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// ListForPrincipal lists orders owned by the entrepreneur principal. Zero
// orders is an empty slice with nil error; a storage failure is returned to
// the caller so "no orders yet" and "storage down" stay distinguishable.
func (s *OrderService) ListForPrincipal(ctx context.Context, principal *domain.Profile) ([]domain.Order, error) {
	if principal == nil || principal.Role != domain.RoleEntrepreneur {
		return nil, apperrors.NewForbidden("entrepreneur role required")
	}

	orders, err := s.orders.ListByEntrepreneur(ctx, principal.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

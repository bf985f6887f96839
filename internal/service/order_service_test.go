package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spec-kit/moderation-service/internal/domain"
	apperrors "github.com/spec-kit/moderation-service/pkg/util"
)

type fakeOrderRepo struct {
	orders  []domain.Order
	listErr error
}

func (f *fakeOrderRepo) ListByEntrepreneur(_ context.Context, entrepreneurID string) ([]domain.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []domain.Order{}
	for _, o := range f.orders {
		if o.EntrepreneurID == entrepreneurID {
			out = append(out, o)
		}
	}
	return out, nil
}

type OrderServiceSuite struct {
	suite.Suite
	repo *fakeOrderRepo
	svc  *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceSuite))
}

func (s *OrderServiceSuite) SetupTest() {
	s.repo = &fakeOrderRepo{orders: []domain.Order{
		{ID: "o1", EntrepreneurID: "e1", BuyerID: "b1", Status: domain.OrderStatusPaid, TotalCents: 2500},
		{ID: "o2", EntrepreneurID: "e1", BuyerID: "b2", Status: domain.OrderStatusShipped, TotalCents: 990},
		{ID: "o3", EntrepreneurID: "e2", BuyerID: "b1", Status: domain.OrderStatusPending, TotalCents: 100},
	}}
	s.svc = NewOrderService(s.repo)
}

func (s *OrderServiceSuite) TestListScopedToPrincipal() {
	principal := &domain.Profile{ID: "e1", Role: domain.RoleEntrepreneur}
	orders, err := s.svc.ListForPrincipal(context.Background(), principal)
	s.Require().NoError(err)
	s.Require().Len(orders, 2)
	for _, o := range orders {
		s.Equal("e1", o.EntrepreneurID)
	}
}

func (s *OrderServiceSuite) TestZeroOrdersIsEmptyNotError() {
	principal := &domain.Profile{ID: "e-new", Role: domain.RoleEntrepreneur}
	orders, err := s.svc.ListForPrincipal(context.Background(), principal)
	s.Require().NoError(err)
	s.NotNil(orders)
	s.Empty(orders)
}

func (s *OrderServiceSuite) TestStorageFailureIsDistinguishable() {
	s.repo.listErr = errors.New("connection reset")
	principal := &domain.Profile{ID: "e1", Role: domain.RoleEntrepreneur}
	orders, err := s.svc.ListForPrincipal(context.Background(), principal)
	s.Require().Error(err)
	s.Nil(orders)
	s.Equal("INTERNAL_ERROR", apperrors.ToDomainError(err).Code)
}

func (s *OrderServiceSuite) TestNonEntrepreneurForbidden() {
	for _, role := range []domain.ProfileRole{domain.RoleAdmin, domain.RoleBuyer} {
		_, err := s.svc.ListForPrincipal(context.Background(), &domain.Profile{ID: "x", Role: role})
		s.Require().Error(err)
		s.Equal("FORBIDDEN", apperrors.ToDomainError(err).Code)
	}
}

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/spec-kit/moderation-service/internal/domain"
)

// fakeProfileRepo mirrors the storage matching contract: case-insensitive
// substring match on email or full name, capped at the given limit.
type fakeProfileRepo struct {
	profiles    []domain.Profile
	searchCalls int
	searchErr   error
	updateErr   error
	updated     map[string]domain.ProfileUpdate
}

func newFakeProfileRepo(profiles ...domain.Profile) *fakeProfileRepo {
	return &fakeProfileRepo{profiles: profiles, updated: map[string]domain.ProfileUpdate{}}
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			return &f.profiles[i], nil
		}
	}
	return nil, errors.New("no rows in result set")
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for i := range f.profiles {
		if f.profiles[i].Email == email {
			return &f.profiles[i], nil
		}
	}
	return nil, errors.New("no rows in result set")
}

func (f *fakeProfileRepo) Search(_ context.Context, term string, limit int) ([]domain.SearchResult, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	needle := strings.ToLower(term)
	results := []domain.SearchResult{}
	for _, p := range f.profiles {
		if len(results) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Email), needle) ||
			strings.Contains(strings.ToLower(p.FullName), needle) {
			results = append(results, domain.SearchResult{
				ID:       p.ID,
				FullName: p.FullName,
				Email:    p.Email,
				Phone:    p.Phone,
			})
		}
	}
	return results, nil
}

func (f *fakeProfileRepo) UpdateModeration(_ context.Context, id string, update domain.ProfileUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			if update.Status != nil {
				f.profiles[i].Status = *update.Status
			}
			if update.Type != nil {
				f.profiles[i].Type = *update.Type
			}
			f.updated[id] = update
			return nil
		}
	}
	return errNoRows
}

type DirectoryServiceSuite struct {
	suite.Suite
	repo *fakeProfileRepo
	svc  *DirectoryService
}

func TestDirectoryServiceSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceSuite))
}

func (s *DirectoryServiceSuite) SetupTest() {
	s.repo = newFakeProfileRepo(
		domain.Profile{ID: "p1", FullName: "Anna", Email: "x@y.com", Phone: "111"},
		domain.Profile{ID: "p2", FullName: "Bob", Email: "an@z.com", Phone: "222"},
		domain.Profile{ID: "p3", FullName: "Carol", Email: "carol@shop.io", Phone: "333"},
	)
	s.svc = NewDirectoryService(s.repo, zap.NewNop(), nil)
}

func (s *DirectoryServiceSuite) TestShortQuerySkipsStorage() {
	for _, query := range []string{"", "a", "an", "  a  "} {
		results := s.svc.Search(context.Background(), query)
		s.Empty(results)
		s.NotNil(results)
	}
	s.Zero(s.repo.searchCalls, "storage must not be contacted for short queries")
}

func (s *DirectoryServiceSuite) TestMatchesEitherField() {
	// "ann" appears in Anna's name only; "anna" in neither email.
	results := s.svc.Search(context.Background(), "ann")
	s.Require().Len(results, 1)
	s.Equal("p1", results[0].ID)

	// Substring present in Bob's email.
	results = s.svc.Search(context.Background(), "an@z")
	s.Require().Len(results, 1)
	s.Equal("p2", results[0].ID)
}

func (s *DirectoryServiceSuite) TestCaseInsensitiveMatch() {
	results := s.svc.Search(context.Background(), "ANN")
	s.Require().Len(results, 1)
	s.Equal("Anna", results[0].FullName)
}

func (s *DirectoryServiceSuite) TestResultCap() {
	repo := newFakeProfileRepo()
	for i := 0; i < 10; i++ {
		repo.profiles = append(repo.profiles, domain.Profile{
			ID:       string(rune('a' + i)),
			FullName: "Searchable Seller",
			Email:    "seller@example.com",
		})
	}
	svc := NewDirectoryService(repo, zap.NewNop(), nil)

	results := svc.Search(context.Background(), "seller")
	s.Len(results, 5)
}

func (s *DirectoryServiceSuite) TestStorageFailureDegradesToEmpty() {
	s.repo.searchErr = errors.New("connection refused")

	results := s.svc.Search(context.Background(), "carol")
	s.Empty(results)
	s.NotNil(results, "degraded search still yields a renderable empty sequence")
	s.Equal(1, s.repo.searchCalls)
}

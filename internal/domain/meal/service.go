package meal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/VERITAS-IO/dietech-client/internal/api"
	"github.com/VERITAS-IO/dietech-client/internal/querycache"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

const (
	family   = "meals"
	basePath = "/api/v1/meals"
)

// Service wraps the meal endpoints. Query and Get results are cached under
// the family's key branch; every mutation invalidates that branch.
type Service struct {
	api   *api.Client
	cache *querycache.Cache
}

func NewService(client *api.Client, cache *querycache.Cache) *Service {
	return &Service{api: client, cache: cache}
}

// Query lists meals for the given filters, serving repeated calls with the
// same filters from cache until a mutation invalidates the list branch.
func (s *Service) Query(ctx context.Context, f Filters) (pagination.Page[Meal], error) {
	key := querycache.ListKey(family, f.Values())
	if v, ok := s.cache.Get(key); ok {
		return v.(pagination.Page[Meal]), nil
	}
	token := s.cache.Begin(key)
	var page pagination.Page[Meal]
	if err := s.api.Get(ctx, basePath, f.Values(), &page); err != nil {
		return pagination.Page[Meal]{}, err
	}
	s.cache.Complete(key, token, page)
	return page, nil
}

// Get fetches a single meal by id.
func (s *Service) Get(ctx context.Context, id int64) (*Meal, error) {
	key := querycache.DetailKey(family, id)
	if v, ok := s.cache.Get(key); ok {
		m := v.(Meal)
		return &m, nil
	}
	token := s.cache.Begin(key)
	var m Meal
	if err := s.api.Get(ctx, s.path(id), nil, &m); err != nil {
		return nil, err
	}
	s.cache.Complete(key, token, m)
	return &m, nil
}

// Create persists a meal and returns its server-assigned id.
func (s *Service) Create(ctx context.Context, req CreateMealRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := s.api.Post(ctx, basePath, req, &resp); err != nil {
		return 0, err
	}
	s.cache.InvalidateAfterMutation(family, resp.ID)
	return resp.ID, nil
}

// Update applies a partial update to a meal.
func (s *Service) Update(ctx context.Context, id int64, req UpdateMealRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.api.Put(ctx, s.path(id), req); err != nil {
		return err
	}
	s.cache.InvalidateAfterMutation(family, id)
	return nil
}

// Delete removes a meal.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, s.path(id)); err != nil {
		return err
	}
	s.cache.InvalidateAfterMutation(family, id)
	return nil
}

func (s *Service) path(id int64) string {
	return fmt.Sprintf("%s/%s", basePath, strconv.FormatInt(id, 10))
}

package diet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/VERITAS-IO/dietech-client/internal/api"
	"github.com/VERITAS-IO/dietech-client/internal/querycache"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

const (
	family   = "diets"
	basePath = "/api/v1/diets"
)

// Service wraps the diet endpoints. List responses carry only the scalar
// diet fields; the detail endpoint additionally returns the meal collection.
type Service struct {
	api   *api.Client
	cache *querycache.Cache
}

func NewService(client *api.Client, cache *querycache.Cache) *Service {
	return &Service{api: client, cache: cache}
}

// Query lists diets for the given filters, serving repeated calls with the
// same filters from cache until a mutation invalidates the list branch.
func (s *Service) Query(ctx context.Context, f Filters) (pagination.Page[Diet], error) {
	key := querycache.ListKey(family, f.Values())
	if v, ok := s.cache.Get(key); ok {
		return v.(pagination.Page[Diet]), nil
	}
	token := s.cache.Begin(key)
	var page pagination.Page[Diet]
	if err := s.api.Get(ctx, basePath, f.Values(), &page); err != nil {
		return pagination.Page[Diet]{}, err
	}
	s.cache.Complete(key, token, page)
	return page, nil
}

// Get fetches a diet with its meals.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	key := querycache.DetailKey(family, id)
	if v, ok := s.cache.Get(key); ok {
		d := v.(Detail)
		return &d, nil
	}
	token := s.cache.Begin(key)
	var d Detail
	if err := s.api.Get(ctx, s.path(id), nil, &d); err != nil {
		return nil, err
	}
	s.cache.Complete(key, token, d)
	return &d, nil
}

// Create persists a diet, including any meals staged during the creation
// session, and returns the server-assigned id.
func (s *Service) Create(ctx context.Context, req CreateDietRequest) (int64, error) {
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

// Update sends a single aggregate command: the dirty scalar fields plus the
// staged meal additions and removals. Callers must not call Update with an
// empty request.
func (s *Service) Update(ctx context.Context, id int64, req UpdateDietRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.api.Put(ctx, s.path(id), req); err != nil {
		return err
	}
	s.cache.InvalidateAfterMutation(family, id)
	return nil
}

// Delete removes a diet and its meals.
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

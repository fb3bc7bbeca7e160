package nutrition

import (
	"context"
	"fmt"
	"strconv"

	"github.com/VERITAS-IO/dietech-client/internal/api"
	"github.com/VERITAS-IO/dietech-client/internal/querycache"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

const (
	family   = "nutrition-info"
	basePath = "/nutrition-info"
)

// Service wraps the nutrition-info endpoints.
type Service struct {
	api   *api.Client
	cache *querycache.Cache
}

func NewService(client *api.Client, cache *querycache.Cache) *Service {
	return &Service{api: client, cache: cache}
}

func (s *Service) Query(ctx context.Context, f Filters) (pagination.Page[Info], error) {
	key := querycache.ListKey(family, f.Values())
	if v, ok := s.cache.Get(key); ok {
		return v.(pagination.Page[Info]), nil
	}
	token := s.cache.Begin(key)
	var page pagination.Page[Info]
	if err := s.api.Get(ctx, basePath, f.Values(), &page); err != nil {
		return pagination.Page[Info]{}, err
	}
	s.cache.Complete(key, token, page)
	return page, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Info, error) {
	key := querycache.DetailKey(family, id)
	if v, ok := s.cache.Get(key); ok {
		info := v.(Info)
		return &info, nil
	}
	token := s.cache.Begin(key)
	var info Info
	if err := s.api.Get(ctx, s.path(id), nil, &info); err != nil {
		return nil, err
	}
	s.cache.Complete(key, token, info)
	return &info, nil
}

func (s *Service) Create(ctx context.Context, req CreateInfoRequest) (int64, error) {
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

func (s *Service) Update(ctx context.Context, id int64, req UpdateInfoRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.api.Put(ctx, s.path(id), req); err != nil {
		return err
	}
	s.cache.InvalidateAfterMutation(family, id)
	return nil
}

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

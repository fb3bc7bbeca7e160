package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/VERITAS-IO/dietech-client/internal/api"
	"github.com/VERITAS-IO/dietech-client/internal/querycache"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

const (
	family   = "clients"
	basePath = "/clients"
)

// Service wraps the client endpoints. Registration is a single request that
// creates the client and all four sub-records together.
type Service struct {
	api   *api.Client
	cache *querycache.Cache
}

func NewService(client *api.Client, cache *querycache.Cache) *Service {
	return &Service{api: client, cache: cache}
}

// Query lists clients for the given filters.
func (s *Service) Query(ctx context.Context, f Filters) (pagination.Page[Client], error) {
	key := querycache.ListKey(family, f.Values())
	if v, ok := s.cache.Get(key); ok {
		return v.(pagination.Page[Client]), nil
	}
	token := s.cache.Begin(key)
	var page pagination.Page[Client]
	if err := s.api.Get(ctx, basePath, f.Values(), &page); err != nil {
		return pagination.Page[Client]{}, err
	}
	s.cache.Complete(key, token, page)
	return page, nil
}

// Get fetches a single client profile by id.
func (s *Service) Get(ctx context.Context, id int64) (*Client, error) {
	key := querycache.DetailKey(family, id)
	if v, ok := s.cache.Get(key); ok {
		c := v.(Client)
		return &c, nil
	}
	token := s.cache.Begin(key)
	var c Client
	if err := s.api.Get(ctx, s.path(id), nil, &c); err != nil {
		return nil, err
	}
	s.cache.Complete(key, token, c)
	return &c, nil
}

// Register creates a client from the completed wizard and returns the
// server-assigned id.
func (s *Service) Register(ctx context.Context, req RegisterClientRequest) (int64, error) {
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

func (s *Service) path(id int64) string {
	return fmt.Sprintf("%s/%s", basePath, strconv.FormatInt(id, 10))
}

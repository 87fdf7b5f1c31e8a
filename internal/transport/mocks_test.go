package transport

import (
	"context"
	"errors"
	"time"

	"catalog-api/internal/events"
	"catalog-api/internal/repository"
	"catalog-api/internal/schema"
	"catalog-api/internal/service"
)

var fixedTime = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

// fakeProductService serves products out of memory. Category 1 "Books" always exists.
type fakeProductService struct {
	products   map[int64]schema.ProductResponse
	categories map[int64]schema.CategoryResponse
	nextID     int64
	err        error
	created    []schema.ProductCreate
}

func newFakeProductService() *fakeProductService {
	return &fakeProductService{
		products: make(map[int64]schema.ProductResponse),
		categories: map[int64]schema.CategoryResponse{
			1: {ID: 1, Name: "Books", CreatedAt: fixedTime},
		},
		nextID: 1,
	}
}

func (s *fakeProductService) ListProducts(ctx context.Context) (*schema.ProductListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	items := make([]schema.ProductResponse, 0, len(s.products))
	for id := int64(1); id < s.nextID; id++ {
		if p, ok := s.products[id]; ok {
			items = append(items, p)
		}
	}
	return &schema.ProductListResponse{Products: items, Total: len(items)}, nil
}

func (s *fakeProductService) GetProduct(ctx context.Context, id int64) (*schema.ProductResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.products[id]
	if !ok {
		return nil, &service.NotFoundError{Resource: "product", ID: id}
	}
	return &p, nil
}

func (s *fakeProductService) ListProductsByCategory(ctx context.Context, categoryID int64) (*schema.ProductListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.categories[categoryID]; !ok {
		return nil, &service.NotFoundError{Resource: "category", ID: categoryID}
	}
	items := make([]schema.ProductResponse, 0)
	for id := int64(1); id < s.nextID; id++ {
		if p, ok := s.products[id]; ok && p.CategoryID == categoryID {
			items = append(items, p)
		}
	}
	return &schema.ProductListResponse{Products: items, Total: len(items)}, nil
}

func (s *fakeProductService) CreateProduct(ctx context.Context, data schema.ProductCreate) (*schema.ProductResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	category, ok := s.categories[data.CategoryID]
	if !ok {
		return nil, &service.InvalidReferenceError{Field: "category_id", Resource: "category", ID: data.CategoryID}
	}
	s.created = append(s.created, data)

	p := schema.ProductResponse{
		ID:          s.nextID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		ImageURL:    data.ImageURL,
		CreatedAt:   fixedTime,
		Category:    &category,
	}
	s.products[p.ID] = p
	s.nextID++
	return &p, nil
}

type fakeCategoryService struct {
	categories map[int64]schema.CategoryResponse
	nextID     int64
	err        error
}

func newFakeCategoryService() *fakeCategoryService {
	return &fakeCategoryService{
		categories: map[int64]schema.CategoryResponse{
			1: {ID: 1, Name: "Books", CreatedAt: fixedTime},
		},
		nextID: 2,
	}
}

func (s *fakeCategoryService) ListCategories(ctx context.Context) (*schema.CategoryListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	items := make([]schema.CategoryResponse, 0, len(s.categories))
	for id := int64(1); id < s.nextID; id++ {
		if c, ok := s.categories[id]; ok {
			items = append(items, c)
		}
	}
	return &schema.CategoryListResponse{Categories: items, Total: len(items)}, nil
}

func (s *fakeCategoryService) GetCategory(ctx context.Context, id int64) (*schema.CategoryResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.categories[id]
	if !ok {
		return nil, &service.NotFoundError{Resource: "category", ID: id}
	}
	return &c, nil
}

func (s *fakeCategoryService) CreateCategory(ctx context.Context, data schema.CategoryCreate) (*schema.CategoryResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.categories {
		if c.Name == data.Name {
			return nil, repository.ErrCategoryAlreadyExists
		}
	}
	c := schema.CategoryResponse{ID: s.nextID, Name: data.Name, Description: data.Description, CreatedAt: fixedTime}
	s.categories[c.ID] = c
	s.nextID++
	return &c, nil
}

type recordingPublisher struct {
	events []events.ProductEvent
	err    error
}

func (p *recordingPublisher) PublishProductEvent(ctx context.Context, event events.ProductEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

var errDatabaseDown = errors.New("connection refused")

package service

import (
	"context"
	"time"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository"
)

// Mock repositories for testing
type mockCategoryRepository struct {
	categories map[int64]*domain.Category
	nextID     int64
	err        error
	getByIDs   []int64
}

func newMockCategoryRepository(categories ...*domain.Category) *mockCategoryRepository {
	m := &mockCategoryRepository{categories: make(map[int64]*domain.Category), nextID: 1}
	for _, c := range categories {
		m.categories[c.ID] = c
		if c.ID >= m.nextID {
			m.nextID = c.ID + 1
		}
	}
	return m
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.categories {
		if existing.Name == category.Name {
			return repository.ErrCategoryAlreadyExists
		}
	}
	category.ID = m.nextID
	category.CreatedAt = time.Now()
	m.nextID++
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	categories := []*domain.Category{}
	for id := int64(1); id < m.nextID; id++ {
		if c, ok := m.categories[id]; ok {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	m.getByIDs = append(m.getByIDs, id)
	if m.err != nil {
		return nil, m.err
	}
	category, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	return category, nil
}

type mockProductRepository struct {
	products      []*domain.Product
	categories    *mockCategoryRepository
	nextID        int64
	err           error
	getByCategory int
	createCalls   int
}

func newMockProductRepository(categories *mockCategoryRepository) *mockProductRepository {
	return &mockProductRepository{categories: categories, nextID: 1}
}

func (m *mockProductRepository) add(p *domain.Product) {
	p.ID = m.nextID
	m.nextID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.Category = m.categories.categories[p.CategoryID]
	m.products = append(m.products, p)
}

func (m *mockProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]*domain.Product{}, m.products...), nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) GetByCategory(ctx context.Context, categoryID int64) ([]*domain.Product, error) {
	m.getByCategory++
	if m.err != nil {
		return nil, m.err
	}
	products := []*domain.Product{}
	for _, p := range m.products {
		if p.CategoryID == categoryID {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.createCalls++
	if m.err != nil {
		return m.err
	}
	m.add(product)
	return nil
}

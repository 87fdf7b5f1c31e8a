package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"catalog-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var productColumns = []string{
	"id", "name", "description", "price", "category_id", "image_url", "created_at",
	"id", "name", "description", "created_at",
}

type ProductRepositoryTestSuite struct {
	suite.Suite
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo ProductRepository
}

func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryTestSuite))
}

func (s *ProductRepositoryTestSuite) SetupTest() {
	var err error
	s.db, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	s.repo = NewProductRepository(s.db)
}

func (s *ProductRepositoryTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
	s.db.Close()
}

func (s *ProductRepositoryTestSuite) TestGetAll_ReturnsProductsWithCategory() {
	createdAt := time.Now()
	description := "Classic reference"

	rows := sqlmock.NewRows(productColumns).
		AddRow(int64(1), "Learn Systems Design", description, 29.99, int64(1), nil, createdAt,
			int64(1), "Books", nil, createdAt).
		AddRow(int64(2), "Distributed Databases", nil, 45.5, int64(1), "https://img.example/2.png", createdAt,
			int64(1), "Books", nil, createdAt)

	s.mock.ExpectQuery(regexp.QuoteMeta("FROM products p")).WillReturnRows(rows)

	products, err := s.repo.GetAll(context.Background())

	require.NoError(s.T(), err)
	require.Len(s.T(), products, 2)
	assert.Equal(s.T(), int64(1), products[0].ID)
	require.NotNil(s.T(), products[0].Description)
	assert.Equal(s.T(), description, *products[0].Description)
	assert.Nil(s.T(), products[0].ImageURL)
	require.NotNil(s.T(), products[1].ImageURL)
	assert.Equal(s.T(), "https://img.example/2.png", *products[1].ImageURL)
	require.NotNil(s.T(), products[1].Category)
	assert.Equal(s.T(), "Books", products[1].Category.Name)
}

func (s *ProductRepositoryTestSuite) TestGetAll_EmptyTableReturnsEmptySlice() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM products p")).
		WillReturnRows(sqlmock.NewRows(productColumns))

	products, err := s.repo.GetAll(context.Background())

	require.NoError(s.T(), err)
	assert.NotNil(s.T(), products)
	assert.Empty(s.T(), products)
}

func (s *ProductRepositoryTestSuite) TestGetAll_QueryError() {
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM products p")).
		WillReturnError(errors.New("connection reset"))

	products, err := s.repo.GetAll(context.Background())

	assert.Error(s.T(), err)
	assert.Nil(s.T(), products)
	assert.Contains(s.T(), err.Error(), "failed to list products")
}

func (s *ProductRepositoryTestSuite) TestGetByID_Success() {
	createdAt := time.Now()
	rows := sqlmock.NewRows(productColumns).
		AddRow(int64(7), "Mechanical Keyboard", nil, 120.0, int64(3), nil, createdAt,
			int64(3), "Peripherals", nil, createdAt)

	s.mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	product, err := s.repo.GetByID(context.Background(), 7)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Mechanical Keyboard", product.Name)
	assert.Equal(s.T(), int64(3), product.Category.ID)
}

func (s *ProductRepositoryTestSuite) TestGetByID_NotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id = $1")).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	product, err := s.repo.GetByID(context.Background(), 404)

	assert.ErrorIs(s.T(), err, ErrProductNotFound)
	assert.Nil(s.T(), product)
}

func (s *ProductRepositoryTestSuite) TestGetByCategory_FiltersByCategory() {
	createdAt := time.Now()
	rows := sqlmock.NewRows(productColumns).
		AddRow(int64(4), "Trail Running Shoes", nil, 89.9, int64(5), nil, createdAt,
			int64(5), "Outdoor", nil, createdAt)

	s.mock.ExpectQuery(regexp.QuoteMeta("WHERE p.category_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	products, err := s.repo.GetByCategory(context.Background(), 5)

	require.NoError(s.T(), err)
	require.Len(s.T(), products, 1)
	assert.Equal(s.T(), int64(5), products[0].CategoryID)
}

func (s *ProductRepositoryTestSuite) TestCreate_PopulatesServerAssignedFields() {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	imageURL := "https://img.example/book.png"
	product := &domain.Product{
		Name:       "Learn Systems Design",
		Price:      29.99,
		CategoryID: 1,
		ImageURL:   &imageURL,
	}

	s.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
		WithArgs("Learn Systems Design", nil, 29.99, int64(1), imageURL).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price", "created_at"}).AddRow(int64(11), 29.99, createdAt))

	err := s.repo.Create(context.Background(), product)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(11), product.ID)
	assert.True(s.T(), createdAt.Equal(product.CreatedAt))
}

func (s *ProductRepositoryTestSuite) TestCreate_ReportsStoredPrice() {
	product := &domain.Product{Name: "Fractional Widget", Price: 29.999, CategoryID: 1}

	s.mock.ExpectQuery(regexp.QuoteMeta("RETURNING id, price, created_at")).
		WithArgs("Fractional Widget", nil, 29.999, int64(1), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price", "created_at"}).AddRow(int64(12), 30.0, time.Now()))

	err := s.repo.Create(context.Background(), product)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), 30.0, product.Price)
}

func (s *ProductRepositoryTestSuite) TestCreate_DatabaseError() {
	s.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
		WillReturnError(errors.New("insert failed"))

	err := s.repo.Create(context.Background(), &domain.Product{Name: "Broken Product", Price: 1, CategoryID: 1})

	assert.Error(s.T(), err)
	assert.Contains(s.T(), err.Error(), "failed to create product")
}

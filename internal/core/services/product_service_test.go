package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/procurio/procure_backend/internal/apperrors"
	"github.com/procurio/procure_backend/internal/core/domain"
	portsrepo "github.com/procurio/procure_backend/internal/core/ports/repositories"
	portssvc "github.com/procurio/procure_backend/internal/core/ports/services"
	"github.com/procurio/procure_backend/internal/core/services"
	"github.com/procurio/procure_backend/internal/dto"
)

// MockProductRepository is a mock type for the ProductRepositoryFacade interface
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepositoryFacade = (*MockProductRepository)(nil)

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProductsByCategory(ctx context.Context, categoryID string, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockCategoryReader is a mock type for the CategoryReader interface
type MockCategoryReader struct {
	mock.Mock
}

var _ portsrepo.CategoryReader = (*MockCategoryReader)(nil)

func (m *MockCategoryReader) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryReader) ListCategories(ctx context.Context, limit int, offset int) ([]domain.Category, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Test Suite Setup ---

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockProductRepository
	mockCategories *MockCategoryReader
	service        portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.mockCategories = new(MockCategoryReader)
	suite.service = services.NewProductService(suite.mockRepo, suite.mockCategories)
}

// --- Test Cases ---

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateProductRequest{
		Name:       "M8 Bolt",
		Price:      decimal.NewFromInt(2),
		CategoryID: categoryID,
	}

	suite.mockCategories.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.Category{CategoryID: categoryID, Name: "Hardware"}, nil).Once()
	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == req.Name && p.CategoryID == categoryID && p.Stock == 0
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.NotEmpty(product.ProductID)
	suite.Equal(int64(0), product.Stock) // stock always starts at zero
	suite.WithinDuration(time.Now(), product.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCategories.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativePrice() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:       "Bad Price",
		Price:      decimal.NewFromInt(-1),
		CategoryID: uuid.NewString(),
	}

	product, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_UnknownCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateProductRequest{
		Name:       "Orphan",
		Price:      decimal.NewFromInt(1),
		CategoryID: categoryID,
	}

	suite.mockCategories.On("FindCategoryByID", ctx, categoryID).
		Return(nil, apperrors.NewNotFoundError("category", categoryID)).Once()

	product, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_StockCannotChange() {
	ctx := context.Background()
	testID := uuid.NewString()
	original := &domain.Product{
		ProductID: testID,
		Name:      "M8 Bolt",
		Price:     decimal.NewFromInt(2),
		Stock:     7,
	}

	newName := "M8 Bolt (zinc)"
	req := dto.UpdateProductRequest{Name: &newName}

	suite.mockRepo.On("FindProductByID", ctx, testID).Return(original, nil).Once()
	suite.mockRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.ProductID == testID && p.Name == newName && p.Stock == 7
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, testID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(newName, updated.Name)
	suite.Equal(int64(7), updated.Stock)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_NoChanges() {
	ctx := context.Background()
	testID := uuid.NewString()
	original := &domain.Product{ProductID: testID, Name: "Unchanged"}

	suite.mockRepo.On("FindProductByID", ctx, testID).Return(original, nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, testID, dto.UpdateProductRequest{})

	suite.Require().NoError(err)
	suite.Equal(original, updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_ConflictWhileReferenced() {
	ctx := context.Background()
	testID := uuid.NewString()
	conflictErr := fmt.Errorf("%w: product is still referenced by purchases", apperrors.ErrConflict)

	suite.mockRepo.On("FindProductByID", ctx, testID).
		Return(&domain.Product{ProductID: testID}, nil).Once()
	suite.mockRepo.On("DeleteProduct", ctx, testID).Return(conflictErr).Once()

	err := suite.service.DeleteProduct(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestListProducts_ByCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	expected := []domain.Product{{ProductID: uuid.NewString(), CategoryID: categoryID}}

	suite.mockRepo.On("ListProductsByCategory", ctx, categoryID, 20, 0).Return(expected, nil).Once()

	products, err := suite.service.ListProducts(ctx, dto.ListProductsParams{Limit: 20, CategoryID: categoryID})

	suite.Require().NoError(err)
	suite.Equal(expected, products)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "ListProducts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestListProducts_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListProducts", ctx, 20, 0).Return(nil, expectedErr).Once()

	products, err := suite.service.ListProducts(ctx, dto.ListProductsParams{Limit: 20})

	suite.Require().Error(err)
	suite.Nil(products)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

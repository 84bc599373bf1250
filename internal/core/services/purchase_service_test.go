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

// MockPurchaseRepository is a mock type for the PurchaseRepositoryFacade interface
type MockPurchaseRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseRepositoryFacade = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) PostPurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) ReversePurchase(ctx context.Context, purchaseID string) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context, limit int, offset int) ([]domain.Purchase, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchasesByProduct(ctx context.Context, productID string, limit int, offset int) ([]domain.Purchase, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchasesBySupplier(ctx context.Context, supplierID string, limit int, offset int) ([]domain.Purchase, error) {
	args := m.Called(ctx, supplierID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchasesByAccount(ctx context.Context, accountID string, limit int, offset int) ([]domain.Purchase, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

// --- Test Suite Setup ---

type PurchaseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPurchaseRepository
	service  portssvc.PurchaseSvcFacade
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPurchaseRepository)
	suite.service = services.NewPurchaseService(suite.mockRepo)
}

func validPurchaseRequest() dto.CreatePurchaseRequest {
	return dto.CreatePurchaseRequest{
		ProductID:          uuid.NewString(),
		SupplierID:         uuid.NewString(),
		FinancialAccountID: uuid.NewString(),
		Quantity:           5,
		TotalPrice:         decimal.NewFromInt(125),
		ReceiptImage:       "receipts/2026/08/abc.png",
	}
}

// --- Test Cases ---

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_Success() {
	ctx := context.Background()
	req := validPurchaseRequest()

	suite.mockRepo.On("PostPurchase", ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.ProductID == req.ProductID &&
			p.SupplierID == req.SupplierID &&
			p.AccountID == req.FinancialAccountID &&
			p.Quantity == req.Quantity &&
			p.TotalPrice.Equal(req.TotalPrice) &&
			p.ReceiptImage == req.ReceiptImage &&
			p.PurchaseID != ""
	})).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(purchase)
	suite.NotEmpty(purchase.PurchaseID)
	suite.Equal(req.ProductID, purchase.ProductID)
	suite.Equal(req.FinancialAccountID, purchase.AccountID)
	suite.WithinDuration(time.Now(), purchase.CreatedAt, time.Second)
	suite.Equal(purchase.CreatedAt, purchase.LastUpdatedAt)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_MissingProductID() {
	ctx := context.Background()
	req := validPurchaseRequest()
	req.ProductID = ""

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// Validation must reject the request before the repository is touched
	suite.mockRepo.AssertNotCalled(suite.T(), "PostPurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_NonPositiveQuantity() {
	ctx := context.Background()
	req := validPurchaseRequest()
	req.Quantity = 0

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "PostPurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_NonPositiveTotalPrice() {
	ctx := context.Background()
	req := validPurchaseRequest()
	req.TotalPrice = decimal.Zero

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "PostPurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_MissingReceipt() {
	ctx := context.Background()
	req := validPurchaseRequest()
	req.ReceiptImage = ""

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "PostPurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_ReferencedEntityMissing() {
	ctx := context.Background()
	req := validPurchaseRequest()
	notFoundErr := apperrors.NewNotFoundError("product", req.ProductID)

	suite.mockRepo.On("PostPurchase", ctx, mock.AnythingOfType("domain.Purchase")).Return(notFoundErr).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_InsufficientFunds() {
	ctx := context.Background()
	req := validPurchaseRequest()
	fundsErr := fmt.Errorf("%w: account %s balance 10 is less than purchase total 125",
		apperrors.ErrInsufficientFunds, req.FinancialAccountID)

	suite.mockRepo.On("PostPurchase", ctx, mock.AnythingOfType("domain.Purchase")).Return(fundsErr).Once()

	purchase, err := suite.service.CreatePurchase(ctx, req)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestGetPurchaseByID_Success() {
	ctx := context.Background()
	testID := uuid.NewString()
	expected := &domain.Purchase{
		PurchaseID: testID,
		ProductID:  uuid.NewString(),
		Quantity:   3,
		TotalPrice: decimal.NewFromInt(42),
	}

	suite.mockRepo.On("FindPurchaseByID", ctx, testID).Return(expected, nil).Once()

	purchase, err := suite.service.GetPurchaseByID(ctx, testID)

	suite.Require().NoError(err)
	suite.Equal(expected, purchase)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestGetPurchaseByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindPurchaseByID", ctx, testID).Return(nil, apperrors.NewNotFoundError("purchase", testID)).Once()

	purchase, err := suite.service.GetPurchaseByID(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_NoFilter() {
	ctx := context.Background()
	expected := []domain.Purchase{
		{PurchaseID: uuid.NewString()},
		{PurchaseID: uuid.NewString()},
	}

	suite.mockRepo.On("ListPurchases", ctx, 10, 0).Return(expected, nil).Once()

	purchases, err := suite.service.ListPurchases(ctx, dto.ListPurchasesParams{Limit: 10, Offset: 0})

	suite.Require().NoError(err)
	suite.Equal(expected, purchases)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_ByProduct() {
	ctx := context.Background()
	productID := uuid.NewString()
	expected := []domain.Purchase{{PurchaseID: uuid.NewString(), ProductID: productID}}

	suite.mockRepo.On("ListPurchasesByProduct", ctx, productID, 20, 0).Return(expected, nil).Once()

	purchases, err := suite.service.ListPurchases(ctx, dto.ListPurchasesParams{Limit: 20, ProductID: productID})

	suite.Require().NoError(err)
	suite.Equal(expected, purchases)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_MultipleFiltersRejected() {
	ctx := context.Background()
	params := dto.ListPurchasesParams{
		Limit:      20,
		ProductID:  uuid.NewString(),
		SupplierID: uuid.NewString(),
	}

	purchases, err := suite.service.ListPurchases(ctx, params)

	suite.Require().Error(err)
	suite.Nil(purchases)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "ListPurchases", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListPurchasesByProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListPurchasesBySupplier", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_Empty() {
	ctx := context.Background()
	var empty []domain.Purchase

	suite.mockRepo.On("ListPurchases", ctx, 20, 0).Return(empty, nil).Once()

	purchases, err := suite.service.ListPurchases(ctx, dto.ListPurchasesParams{Limit: 20})

	suite.Require().NoError(err)
	suite.NotNil(purchases) // Should be an empty slice, not nil
	suite.Empty(purchases)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListPurchases", ctx, 20, 0).Return(nil, expectedErr).Once()

	purchases, err := suite.service.ListPurchases(ctx, dto.ListPurchasesParams{Limit: 20})

	suite.Require().Error(err)
	suite.Nil(purchases)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_Success() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("ReversePurchase", ctx, testID).Return(nil).Once()

	err := suite.service.DeletePurchase(ctx, testID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("ReversePurchase", ctx, testID).Return(apperrors.NewNotFoundError("purchase", testID)).Once()

	err := suite.service.DeletePurchase(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_StockConsumed() {
	ctx := context.Background()
	testID := uuid.NewString()
	conflictErr := fmt.Errorf("%w: stock already consumed", apperrors.ErrConflict)

	suite.mockRepo.On("ReversePurchase", ctx, testID).Return(conflictErr).Once()

	err := suite.service.DeletePurchase(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestPurchaseService(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}

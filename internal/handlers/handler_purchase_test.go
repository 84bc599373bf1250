package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/procurio/procure_backend/internal/core/services"
	"github.com/procurio/procure_backend/internal/dto"
	"github.com/procurio/procure_backend/internal/handlers"
	"github.com/procurio/procure_backend/internal/platform/config"
	"github.com/procurio/procure_backend/internal/repositories/database/memory"
)

// PurchaseHandlerTestSuite exercises the purchase endpoints end to end over
// the in-memory repositories: real router, real services, no mocks.
type PurchaseHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine

	categoryID string
	productID  string
	supplierID string
	accountID  string
}

func (suite *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	repos := memory.NewRepositoryProvider(memory.NewStore())
	svc := services.NewServiceContainer(repos)
	cfg := &config.Config{IsProduction: true} // no swagger routes in tests
	handlers.RegisterRoutes(suite.router, cfg, svc)

	suite.categoryID = suite.createEntity("/api/v1/categories", dto.CreateCategoryRequest{
		Name: "Hardware",
	}, "categoryID")
	suite.productID = suite.createEntity("/api/v1/products", dto.CreateProductRequest{
		Name:       "M8 Bolt",
		Price:      decimal.NewFromInt(2),
		CategoryID: suite.categoryID,
	}, "productID")
	suite.supplierID = suite.createEntity("/api/v1/suppliers", dto.CreateSupplierRequest{
		Name:         "Acme Fasteners",
		CompanyName:  "Acme Fasteners GmbH",
		ContactEmail: "sales@acme-fasteners.test",
		PhoneNumber:  "+49 30 1234567",
		Address:      "Industriestr. 1, Berlin",
	}, "supplierID")
	suite.accountID = suite.createEntity("/api/v1/accounts", dto.CreateAccountRequest{
		AccountName:   "Operating Cash",
		AccountType:   "ASSET",
		Balance:       decimal.NewFromInt(100),
		AccountNumber: uuid.NewString(),
	}, "accountID")
}

// createEntity POSTs the body and returns the given ID field from the response.
func (suite *PurchaseHandlerTestSuite) createEntity(url string, body any, idField string) string {
	w := suite.doJSON(http.MethodPost, url, body)
	suite.Require().Equal(http.StatusCreated, w.Code, "seed POST %s failed: %s", url, w.Body.String())

	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	id, ok := resp[idField].(string)
	suite.Require().True(ok, "response for %s missing %s", url, idField)
	return id
}

func (suite *PurchaseHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PurchaseHandlerTestSuite) purchaseRequest(quantity int64, totalPrice int64) dto.CreatePurchaseRequest {
	return dto.CreatePurchaseRequest{
		ProductID:          suite.productID,
		SupplierID:         suite.supplierID,
		FinancialAccountID: suite.accountID,
		Quantity:           quantity,
		TotalPrice:         decimal.NewFromInt(totalPrice),
		ReceiptImage:       "receipts/2026/08/abc.png",
	}
}

// --- Test Cases ---

func (suite *PurchaseHandlerTestSuite) TestCreatePurchase_Success() {
	w := suite.doJSON(http.MethodPost, "/api/v1/purchases", suite.purchaseRequest(5, 60))
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp dto.PurchaseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.PurchaseID)
	suite.Equal(suite.productID, resp.ProductID)
	suite.Equal(suite.accountID, resp.FinancialAccountID)
	suite.Equal(int64(5), resp.Quantity)

	// The posting debited the account and credited the stock
	w = suite.doJSON(http.MethodGet, "/api/v1/accounts/"+suite.accountID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var account dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &account))
	suite.True(account.Balance.Equal(decimal.NewFromInt(40)), "expected balance 40, got %s", account.Balance)

	w = suite.doJSON(http.MethodGet, "/api/v1/products/"+suite.productID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var product dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &product))
	suite.Equal(int64(5), product.Stock)
}

func (suite *PurchaseHandlerTestSuite) TestCreatePurchase_InsufficientFunds() {
	w := suite.doJSON(http.MethodPost, "/api/v1/purchases", suite.purchaseRequest(5, 60))
	suite.Require().Equal(http.StatusCreated, w.Code)

	// 70 > remaining 40
	w = suite.doJSON(http.MethodPost, "/api/v1/purchases", suite.purchaseRequest(2, 70))
	suite.Equal(http.StatusPaymentRequired, w.Code, w.Body.String())

	// Rejected posting left no record behind
	w = suite.doJSON(http.MethodGet, "/api/v1/purchases", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListPurchasesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Len(list.Purchases, 1)
}

func (suite *PurchaseHandlerTestSuite) TestCreatePurchase_InvalidBody() {
	req := suite.purchaseRequest(0, 60) // quantity must be > 0
	w := suite.doJSON(http.MethodPost, "/api/v1/purchases", req)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.doJSON(http.MethodPost, "/api/v1/purchases", gin.H{"productID": "not-a-uuid"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PurchaseHandlerTestSuite) TestCreatePurchase_UnknownProduct() {
	req := suite.purchaseRequest(1, 10)
	req.ProductID = uuid.NewString()
	w := suite.doJSON(http.MethodPost, "/api/v1/purchases", req)
	suite.Equal(http.StatusNotFound, w.Code, w.Body.String())
}

func (suite *PurchaseHandlerTestSuite) TestListPurchases_FilterExclusivity() {
	url := fmt.Sprintf("/api/v1/purchases?productID=%s&supplierID=%s", suite.productID, suite.supplierID)
	w := suite.doJSON(http.MethodGet, url, nil)
	suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
}

func (suite *PurchaseHandlerTestSuite) TestListPurchases_ByAccountFilter() {
	w := suite.doJSON(http.MethodPost, "/api/v1/purchases", suite.purchaseRequest(1, 10))
	suite.Require().Equal(http.StatusCreated, w.Code)
	w = suite.doJSON(http.MethodPost, "/api/v1/purchases", suite.purchaseRequest(2, 20))
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.doJSON(http.MethodGet, "/api/v1/purchases?financialAccountID="+suite.accountID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListPurchasesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Require().Len(list.Purchases, 2)
	// Insertion order is preserved
	suite.Equal(int64(1), list.Purchases[0].Quantity)
	suite.Equal(int64(2), list.Purchases[1].Quantity)

	w = suite.doJSON(http.MethodGet, "/api/v1/purchases?financialAccountID="+uuid.NewString(), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Empty(list.Purchases)
}

func (suite *PurchaseHandlerTestSuite) TestDeletePurchase_ReversesPosting() {
	w := suite.doJSON(http.MethodPost, "/api/v1/purchases", suite.purchaseRequest(5, 60))
	suite.Require().Equal(http.StatusCreated, w.Code)
	var created dto.PurchaseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	w = suite.doJSON(http.MethodDelete, "/api/v1/purchases/"+created.PurchaseID, nil)
	suite.Equal(http.StatusNoContent, w.Code, w.Body.String())

	w = suite.doJSON(http.MethodGet, "/api/v1/purchases/"+created.PurchaseID, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	// Balance and stock are back to their pre-posting values
	w = suite.doJSON(http.MethodGet, "/api/v1/accounts/"+suite.accountID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var account dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &account))
	suite.True(account.Balance.Equal(decimal.NewFromInt(100)))

	w = suite.doJSON(http.MethodGet, "/api/v1/products/"+suite.productID, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var product dto.ProductResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &product))
	suite.Equal(int64(0), product.Stock)
}

func (suite *PurchaseHandlerTestSuite) TestDeletePurchase_NotFound() {
	w := suite.doJSON(http.MethodDelete, "/api/v1/purchases/"+uuid.NewString(), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PurchaseHandlerTestSuite) TestDeleteProduct_ConflictWhileReferenced() {
	w := suite.doJSON(http.MethodPost, "/api/v1/purchases", suite.purchaseRequest(1, 10))
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.doJSON(http.MethodDelete, "/api/v1/products/"+suite.productID, nil)
	suite.Equal(http.StatusConflict, w.Code, w.Body.String())
}

// --- Run Test Suite ---

func TestPurchaseHandler(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

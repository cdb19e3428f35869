package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories"
	"github.com/yasinga/yasinga/internal/services"
	"github.com/yasinga/yasinga/internal/services/service_mocks"
)

// TransactionHandlerSuite defines the test suite for TransactionHandler
type TransactionHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockTransactionServiceInterface
	handler     *TransactionHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestTransactionHandlerSuite runs the test suite
func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) createContextWithAuth(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	return c, rec
}

func (s *TransactionHandlerSuite) TestCreateTransaction() {
	reqBody := dto.CreateTransactionRequest{
		TransactionCode: "SBK4X7YQZM",
		Direction:       models.DirectionSent,
		Amount:          "1500.00",
		OtherParty:      "Kenya Power",
	}
	created := &models.Transaction{
		ID:         uuid.New(),
		UserID:     s.testUserID,
		Direction:  models.DirectionSent,
		Amount:     decimal.RequireFromString("1500.00"),
		OtherParty: "Kenya Power",
		State:      models.TransactionStateCategorized,
	}
	s.mockService.EXPECT().CreateTransaction(s.testUserID, gomock.Any()).Return(created, nil)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/transactions", reqBody)
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.TransactionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.TransactionStateCategorized, resp.Transaction.State)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_InvalidDirection() {
	reqBody := dto.CreateTransactionRequest{
		Direction:  "transferred",
		Amount:     "100",
		OtherParty: "Someone",
	}

	c, _ := s.createContextWithAuth(http.MethodPost, "/api/transactions", reqBody)
	s.Error(s.handler.CreateTransaction(c))
}

func (s *TransactionHandlerSuite) TestCreateTransaction_DuplicateCode() {
	reqBody := dto.CreateTransactionRequest{
		TransactionCode: "SBK4X7YQZM",
		Direction:       models.DirectionSent,
		Amount:          "1500.00",
		OtherParty:      "Kenya Power",
	}
	s.mockService.EXPECT().CreateTransaction(s.testUserID, gomock.Any()).
		Return(nil, repositories.ErrDuplicateTransactionCode)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/transactions", reqBody)
	s.NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusConflict, rec.Code)
	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("TRANSACTION_004", resp.Error.Code)
}

func (s *TransactionHandlerSuite) TestListTransactions_PassesPagination() {
	s.mockService.EXPECT().GetTransactions(s.testUserID, 20, 10).
		Return([]models.Transaction{}, int64(45), nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/transactions?offset=20&limit=10", nil)
	s.NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.TransactionListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(45), resp.Total)
	s.Equal(20, resp.Offset)
}

func (s *TransactionHandlerSuite) TestListPendingTransactions() {
	pending := []models.Transaction{
		{ID: uuid.New(), UserID: s.testUserID, State: models.TransactionStatePending},
	}
	s.mockService.EXPECT().GetPendingTransactions(s.testUserID).Return(pending, nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/transactions/pending", nil)
	s.NoError(s.handler.ListPendingTransactions(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.PendingTransactionsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Count)
}

func (s *TransactionHandlerSuite) TestListTransactionsByDateRange() {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	s.mockService.EXPECT().GetTransactionsByDateRange(s.testUserID, start, end).
		Return([]models.Transaction{}, nil)

	target := "/api/transactions/range?start_date=" + start.Format(time.RFC3339) + "&end_date=" + end.Format(time.RFC3339)
	c, rec := s.createContextWithAuth(http.MethodGet, target, nil)
	s.NoError(s.handler.ListTransactionsByDateRange(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestListTransactionsByDateRange_InvertedWindow() {
	target := "/api/transactions/range?start_date=2025-03-15T00:00:00Z&end_date=2025-03-01T00:00:00Z"
	c, rec := s.createContextWithAuth(http.MethodGet, target, nil)

	s.NoError(s.handler.ListTransactionsByDateRange(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerSuite) TestCategorizeTransaction() {
	transactionID := uuid.New()
	categoryID := uuid.New()
	categorized := &models.Transaction{
		ID:         transactionID,
		UserID:     s.testUserID,
		CategoryID: &categoryID,
		State:      models.TransactionStateCategorized,
	}
	s.mockService.EXPECT().CategorizeTransaction(s.testUserID, transactionID, categoryID).
		Return(categorized, nil)

	c, rec := s.createContextWithAuth(http.MethodPost,
		"/api/transactions/"+transactionID.String()+"/categorize",
		dto.CategorizeTransactionRequest{CategoryID: categoryID.String()})
	c.SetParamNames("id")
	c.SetParamValues(transactionID.String())

	s.NoError(s.handler.CategorizeTransaction(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestCategorizeTransaction_NotOwned() {
	transactionID := uuid.New()
	categoryID := uuid.New()
	s.mockService.EXPECT().CategorizeTransaction(s.testUserID, transactionID, categoryID).
		Return(nil, services.ErrTransactionNotOwned)

	c, rec := s.createContextWithAuth(http.MethodPost,
		"/api/transactions/"+transactionID.String()+"/categorize",
		dto.CategorizeTransactionRequest{CategoryID: categoryID.String()})
	c.SetParamNames("id")
	c.SetParamValues(transactionID.String())

	s.NoError(s.handler.CategorizeTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *TransactionHandlerSuite) TestDeleteTransaction() {
	transactionID := uuid.New()
	s.mockService.EXPECT().DeleteTransaction(s.testUserID, transactionID).Return(nil)

	c, rec := s.createContextWithAuth(http.MethodDelete, "/api/transactions/"+transactionID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(transactionID.String())

	s.NoError(s.handler.DeleteTransaction(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

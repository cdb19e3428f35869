package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories"
	"github.com/yasinga/yasinga/internal/services/service_mocks"
)

// SupplierHandlerSuite defines the test suite for SupplierHandler
type SupplierHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockSupplierServiceInterface
	handler     *SupplierHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *SupplierHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockSupplierServiceInterface(s.ctrl)
	s.handler = NewSupplierHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *SupplierHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSupplierHandlerSuite runs the test suite
func TestSupplierHandlerSuite(t *testing.T) {
	suite.Run(t, new(SupplierHandlerSuite))
}

func (s *SupplierHandlerSuite) createContextWithAuth(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	return c, rec
}

func (s *SupplierHandlerSuite) TestListSuppliers() {
	suppliers := []models.Supplier{
		{ID: uuid.New(), UserID: s.testUserID, Name: "Mama Mboga Wholesalers", TotalAmount: decimal.RequireFromString("15000.00")},
		{ID: uuid.New(), UserID: s.testUserID, Name: "Kariobangi Hardware", TotalAmount: decimal.RequireFromString("4200.50")},
	}
	s.mockService.EXPECT().ListSuppliers(s.testUserID).Return(suppliers, nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/suppliers", nil)
	s.NoError(s.handler.ListSuppliers(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.SupplierListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Suppliers, 2)
	s.Equal("Mama Mboga Wholesalers", resp.Suppliers[0].Name)
}

func (s *SupplierHandlerSuite) TestCreateSupplier() {
	reqBody := dto.CreateSupplierRequest{
		Name:        "Nairobi Flour Mills",
		PhoneNumber: "+254712345678",
	}
	created := &models.Supplier{ID: uuid.New(), UserID: s.testUserID, Name: "Nairobi Flour Mills", PhoneNumber: "+254712345678"}

	s.mockService.EXPECT().CreateSupplier(s.testUserID, gomock.Any()).Return(created, nil)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/suppliers", reqBody)
	s.NoError(s.handler.CreateSupplier(c))

	s.Equal(http.StatusCreated, rec.Code)
	var resp dto.SupplierResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Nairobi Flour Mills", resp.Supplier.Name)
}

func (s *SupplierHandlerSuite) TestCreateSupplier_InvalidPhone() {
	reqBody := dto.CreateSupplierRequest{
		Name:        "Nairobi Flour Mills",
		PhoneNumber: "+15551234567",
	}

	c, _ := s.createContextWithAuth(http.MethodPost, "/api/suppliers", reqBody)
	err := s.handler.CreateSupplier(c)

	// Validation errors bubble up to the central error handler
	s.Error(err)
}

func (s *SupplierHandlerSuite) TestCreateSupplier_DuplicateName() {
	reqBody := dto.CreateSupplierRequest{Name: "Nairobi Flour Mills"}

	s.mockService.EXPECT().CreateSupplier(s.testUserID, gomock.Any()).
		Return(nil, repositories.ErrSupplierExists)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/suppliers", reqBody)
	s.NoError(s.handler.CreateSupplier(c))

	s.Equal(http.StatusConflict, rec.Code)
	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("SUPPLIER_002", resp.Error.Code)
}

func (s *SupplierHandlerSuite) TestUpdateSupplier() {
	supplierID := uuid.New()
	phone := "0723456789"
	reqBody := dto.UpdateSupplierRequest{PhoneNumber: &phone}
	updated := &models.Supplier{ID: supplierID, UserID: s.testUserID, Name: "Kariobangi Hardware", PhoneNumber: phone}

	s.mockService.EXPECT().UpdateSupplier(s.testUserID, supplierID, gomock.Any()).Return(updated, nil)

	c, rec := s.createContextWithAuth(http.MethodPut, "/api/suppliers/"+supplierID.String(), reqBody)
	c.SetParamNames("id")
	c.SetParamValues(supplierID.String())
	s.NoError(s.handler.UpdateSupplier(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.SupplierResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(phone, resp.Supplier.PhoneNumber)
}

func (s *SupplierHandlerSuite) TestUpdateSupplier_NotFound() {
	supplierID := uuid.New()
	name := "Renamed Supplier"
	reqBody := dto.UpdateSupplierRequest{Name: &name}

	s.mockService.EXPECT().UpdateSupplier(s.testUserID, supplierID, gomock.Any()).
		Return(nil, repositories.ErrSupplierNotFound)

	c, rec := s.createContextWithAuth(http.MethodPut, "/api/suppliers/"+supplierID.String(), reqBody)
	c.SetParamNames("id")
	c.SetParamValues(supplierID.String())
	s.NoError(s.handler.UpdateSupplier(c))

	s.Equal(http.StatusNotFound, rec.Code)
	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("SUPPLIER_001", resp.Error.Code)
}

func (s *SupplierHandlerSuite) TestUpdateSupplier_MalformedID() {
	c, rec := s.createContextWithAuth(http.MethodPut, "/api/suppliers/not-a-uuid", dto.UpdateSupplierRequest{})
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	s.NoError(s.handler.UpdateSupplier(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("SUPPLIER_003", resp.Error.Code)
}

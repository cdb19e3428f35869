package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/yasinga/yasinga/internal/database"
	"github.com/yasinga/yasinga/internal/models"
)

func TestSupplierRepository(t *testing.T) {
	suite.Run(t, new(SupplierRepositorySuite))
}

type SupplierRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo SupplierRepositoryInterface
	user *models.User
}

func (s *SupplierRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSupplierRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "shop@duka.co.ke")
}

func (s *SupplierRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SupplierRepositorySuite) TestSupplierRepository_Create() {
	supplier := &models.Supplier{
		UserID:      s.user.ID,
		Name:        "Bidco Distributors",
		PhoneNumber: "+254712345678",
	}

	err := s.repo.Create(supplier)
	s.NoError(err)
	s.NotEqual(uuid.Nil, supplier.ID)
}

func (s *SupplierRepositorySuite) TestSupplierRepository_Create_DuplicateName() {
	supplier := &models.Supplier{UserID: s.user.ID, Name: "Bidco Distributors"}
	s.NoError(s.repo.Create(supplier))

	duplicate := &models.Supplier{UserID: s.user.ID, Name: "Bidco Distributors"}
	s.Equal(ErrSupplierExists, s.repo.Create(duplicate))
}

func (s *SupplierRepositorySuite) TestSupplierRepository_GetByUserID_OrderedBySpend() {
	small := &models.Supplier{
		UserID:      s.user.ID,
		Name:        "Small Supplier",
		TotalAmount: decimal.NewFromFloat(500),
	}
	big := &models.Supplier{
		UserID:      s.user.ID,
		Name:        "Big Supplier",
		TotalAmount: decimal.NewFromFloat(25000),
	}
	s.NoError(s.repo.Create(small))
	s.NoError(s.repo.Create(big))

	suppliers, err := s.repo.GetByUserID(s.user.ID)
	s.NoError(err)
	s.Require().Len(suppliers, 2)
	s.Equal(big.ID, suppliers[0].ID)
	s.Equal(small.ID, suppliers[1].ID)
}

func (s *SupplierRepositorySuite) TestSupplierRepository_GetByUserIDAndName() {
	supplier := &models.Supplier{UserID: s.user.ID, Name: "Mombasa Maize Millers"}
	s.NoError(s.repo.Create(supplier))

	found, err := s.repo.GetByUserIDAndName(s.user.ID, "Mombasa Maize Millers")
	s.NoError(err)
	s.Equal(supplier.ID, found.ID)

	_, err = s.repo.GetByUserIDAndName(s.user.ID, "Unknown Supplier")
	s.Equal(ErrSupplierNotFound, err)
}

func (s *SupplierRepositorySuite) TestSupplierRepository_Update_RecordsTransaction() {
	supplier := &models.Supplier{UserID: s.user.ID, Name: "Bidco Distributors"}
	s.NoError(s.repo.Create(supplier))

	at := time.Now()
	supplier.RecordTransaction(decimal.NewFromFloat(7500), at)
	s.NoError(s.repo.Update(supplier))

	found, err := s.repo.GetByID(supplier.ID)
	s.NoError(err)
	s.Equal(1, found.TotalTransactions)
	s.True(found.TotalAmount.Equal(decimal.NewFromFloat(7500)))
	s.NotNil(found.LastTransactionAt)
}

func (s *SupplierRepositorySuite) TestSupplierRepository_Delete() {
	supplier := &models.Supplier{UserID: s.user.ID, Name: "Gone Supplier"}
	s.NoError(s.repo.Create(supplier))

	s.NoError(s.repo.Delete(supplier.ID))
	s.Equal(ErrSupplierNotFound, s.repo.Delete(supplier.ID))
}

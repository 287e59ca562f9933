package application_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/domain/installation"
	"github.com/sunspire/solar-crm/internal/domain/quotation"
	"github.com/sunspire/solar-crm/internal/domain/user"
	"github.com/sunspire/solar-crm/internal/repository"
	"github.com/sunspire/solar-crm/internal/repository/mock_repository"
	"gorm.io/gorm"
)

func setupQuotationMocks(t *testing.T) (*application.QuotationService,
	*mock_repository.MockQuotationRepo, *mock_repository.MockInstallationRepo, *mock_repository.MockUserRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockQuote := mock_repository.NewMockQuotationRepo(ctrl)
	mockInst := mock_repository.NewMockInstallationRepo(ctrl)
	mockUser := mock_repository.NewMockUserRepo(ctrl)
	mockAudit := mock_repository.NewMockAuditRepo(ctrl)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil).AnyTimes()

	repos := &repository.Repos{
		Quotation:    mockQuote,
		Installation: mockInst,
		User:         mockUser,
		Audit:        mockAudit,
	}
	return application.NewQuotationService(repos), mockQuote, mockInst, mockUser
}

func TestQuotationSetStatus(t *testing.T) {
	t.Run("pending can be approved", func(t *testing.T) {
		svc, mockQuote, _, _ := setupQuotationMocks(t)

		mockQuote.EXPECT().GetQuotationByID(uint(1)).Return(quotation.Quotation{
			QuotationID: 1, Status: string(quotation.StatusPending),
		}, nil)
		mockQuote.EXPECT().SaveQuotation(gomock.Any()).Return(nil)

		q, err := svc.SetStatus(admin, 1, string(quotation.StatusApproved))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != string(quotation.StatusApproved) {
			t.Fatalf("expected approved, got %s", q.Status)
		}
	})

	t.Run("approved cannot be re-decided", func(t *testing.T) {
		svc, mockQuote, _, _ := setupQuotationMocks(t)

		mockQuote.EXPECT().GetQuotationByID(uint(1)).Return(quotation.Quotation{
			QuotationID: 1, Status: string(quotation.StatusApproved),
		}, nil)

		_, err := svc.SetStatus(admin, 1, string(quotation.StatusRejected))
		if !errors.Is(err, application.ErrQuotationDecided) {
			t.Fatalf("expected ErrQuotationDecided, got %v", err)
		}
	})

	t.Run("converted is terminal", func(t *testing.T) {
		svc, mockQuote, _, _ := setupQuotationMocks(t)

		mockQuote.EXPECT().GetQuotationByID(uint(1)).Return(quotation.Quotation{
			QuotationID: 1, Status: string(quotation.StatusConverted),
		}, nil)

		_, err := svc.SetStatus(admin, 1, string(quotation.StatusApproved))
		if !errors.Is(err, application.ErrQuotationDecided) {
			t.Fatalf("expected ErrQuotationDecided, got %v", err)
		}
	})

	t.Run("only admins decide", func(t *testing.T) {
		svc, _, _, _ := setupQuotationMocks(t)

		customer := application.Actor{ID: 5, Role: string(user.RoleCustomer)}
		_, err := svc.SetStatus(customer, 1, string(quotation.StatusApproved))
		if !errors.Is(err, application.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestQuotationListScoping(t *testing.T) {
	t.Run("customers only see their own", func(t *testing.T) {
		svc, mockQuote, _, _ := setupQuotationMocks(t)

		customer := application.Actor{ID: 5, Role: string(user.RoleCustomer)}
		mockQuote.EXPECT().ListQuotationsByCustomer(uint(5)).Return([]quotation.Quotation{
			{QuotationID: 1, CustomerID: cid(5), CustomerName: "Own Quote"},
		}, nil)

		quotes, err := svc.ListQuotations(customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 1 {
			t.Fatalf("expected 1 quotation, got %d", len(quotes))
		}
	})

	t.Run("admins see everything", func(t *testing.T) {
		svc, mockQuote, _, _ := setupQuotationMocks(t)

		mockQuote.EXPECT().ListQuotations().Return([]quotation.Quotation{
			{QuotationID: 1, CustomerName: "A"},
			{QuotationID: 2, CustomerName: "B"},
		}, nil)

		quotes, err := svc.ListQuotations(admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 2 {
			t.Fatalf("expected 2 quotations, got %d", len(quotes))
		}
	})

	t.Run("technicians are scoped like customers", func(t *testing.T) {
		svc, mockQuote, _, _ := setupQuotationMocks(t)

		tech := application.Actor{ID: 9, Role: string(user.RoleTechnician)}
		mockQuote.EXPECT().ListQuotationsByCustomer(uint(9)).Return(nil, nil)

		quotes, err := svc.ListQuotations(tech)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 0 {
			t.Fatalf("expected no quotations, got %d", len(quotes))
		}
	})

	t.Run("technician cannot read someone else's quotation", func(t *testing.T) {
		svc, mockQuote, _, _ := setupQuotationMocks(t)

		tech := application.Actor{ID: 9, Role: string(user.RoleTechnician)}
		mockQuote.EXPECT().GetQuotationByID(uint(1)).Return(quotation.Quotation{
			QuotationID: 1, CustomerID: cid(42),
		}, nil)

		_, err := svc.FindQuotationByID(tech, 1)
		if !errors.Is(err, application.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("technician cannot edit someone else's quotation", func(t *testing.T) {
		svc, mockQuote, _, _ := setupQuotationMocks(t)

		tech := application.Actor{ID: 9, Role: string(user.RoleTechnician)}
		mockQuote.EXPECT().GetQuotationByID(uint(1)).Return(quotation.Quotation{
			QuotationID: 1, CustomerID: cid(42), EstimatedCost: 100000,
		}, nil)

		cost := 1.0
		_, err := svc.UpdateQuotation(tech, 1, quotation.UpdateQuotationInput{EstimatedCost: &cost})
		if !errors.Is(err, application.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("customer cannot read someone else's quotation", func(t *testing.T) {
		svc, mockQuote, _, _ := setupQuotationMocks(t)

		customer := application.Actor{ID: 5, Role: string(user.RoleCustomer)}
		mockQuote.EXPECT().GetQuotationByID(uint(1)).Return(quotation.Quotation{
			QuotationID: 1, CustomerID: cid(6),
		}, nil)

		_, err := svc.FindQuotationByID(customer, 1)
		if !errors.Is(err, application.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestCustomerNameEnrichment(t *testing.T) {
	t.Run("numeric stored name is replaced by the user's full name", func(t *testing.T) {
		svc, mockQuote, _, mockUser := setupQuotationMocks(t)

		mockQuote.EXPECT().ListQuotations().Return([]quotation.Quotation{
			{QuotationID: 1, CustomerID: cid(42), CustomerName: "42"},
		}, nil)
		mockUser.EXPECT().GetUserByID(uint(42)).Return(user.User{
			UID: 42, FirstName: "Asha", LastName: "Rao",
		}, nil)

		quotes, err := svc.ListQuotations(admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quotes[0].CustomerName != "Asha Rao" {
			t.Fatalf("expected enriched name, got %q", quotes[0].CustomerName)
		}
	})

	t.Run("uuid shaped stored name is replaced", func(t *testing.T) {
		svc, mockQuote, _, mockUser := setupQuotationMocks(t)

		mockQuote.EXPECT().ListQuotations().Return([]quotation.Quotation{
			{QuotationID: 1, CustomerID: cid(42), CustomerName: "7f6c2f9e-59b1-4f8a-9c52-0a2b7f3de111"},
		}, nil)
		mockUser.EXPECT().GetUserByID(uint(42)).Return(user.User{
			UID: 42, FirstName: "Asha", LastName: "Rao",
		}, nil)

		quotes, err := svc.ListQuotations(admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quotes[0].CustomerName != "Asha Rao" {
			t.Fatalf("expected enriched name, got %q", quotes[0].CustomerName)
		}
	})

	t.Run("free text name is preserved", func(t *testing.T) {
		svc, mockQuote, _, _ := setupQuotationMocks(t)

		mockQuote.EXPECT().ListQuotations().Return([]quotation.Quotation{
			{QuotationID: 1, CustomerID: cid(42), CustomerName: "Rao Residence (rooftop)"},
		}, nil)

		quotes, err := svc.ListQuotations(admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quotes[0].CustomerName != "Rao Residence (rooftop)" {
			t.Fatalf("expected stored name kept, got %q", quotes[0].CustomerName)
		}
	})

	t.Run("lookup failure keeps the stored value", func(t *testing.T) {
		svc, mockQuote, _, mockUser := setupQuotationMocks(t)

		mockQuote.EXPECT().ListQuotations().Return([]quotation.Quotation{
			{QuotationID: 1, CustomerID: cid(42), CustomerName: "42"},
		}, nil)
		mockUser.EXPECT().GetUserByID(uint(42)).Return(user.User{}, gorm.ErrRecordNotFound)

		quotes, err := svc.ListQuotations(admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quotes[0].CustomerName != "42" {
			t.Fatalf("expected stored name kept, got %q", quotes[0].CustomerName)
		}
	})
}

func TestUpdateQuotationSyncsInstallation(t *testing.T) {
	t.Run("converted quotation pushes edits onto its installation", func(t *testing.T) {
		svc, mockQuote, mockInst, _ := setupQuotationMocks(t)

		mockQuote.EXPECT().GetQuotationByID(uint(1)).Return(quotation.Quotation{
			QuotationID: 1, CustomerID: cid(42), Status: string(quotation.StatusConverted),
			CustomerName: "Asha Rao", PropertyAddress: "12 Lake Road", SystemSize: 5.5, EstimatedCost: 302500,
		}, nil)
		mockQuote.EXPECT().SaveQuotation(gomock.Any()).Return(nil)
		mockInst.EXPECT().GetInstallationByQuotationID(uint(1)).Return(installation.Installation{
			InstallationID: 11, Capacity: 5.5,
		}, nil)

		var synced installation.Installation
		mockInst.EXPECT().SaveInstallation(gomock.Any()).DoAndReturn(func(i *installation.Installation) error {
			synced = *i
			return nil
		})

		size := 6.6
		if _, err := svc.UpdateQuotation(admin, 1, quotation.UpdateQuotationInput{SystemSize: &size}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if synced.Capacity != 6.6 {
			t.Fatalf("expected installation capacity synced to 6.6, got %v", synced.Capacity)
		}
	})

	t.Run("sync failure does not fail the update", func(t *testing.T) {
		svc, mockQuote, mockInst, _ := setupQuotationMocks(t)

		mockQuote.EXPECT().GetQuotationByID(uint(1)).Return(quotation.Quotation{
			QuotationID: 1, Status: string(quotation.StatusConverted),
		}, nil)
		mockQuote.EXPECT().SaveQuotation(gomock.Any()).Return(nil)
		mockInst.EXPECT().GetInstallationByQuotationID(uint(1)).Return(installation.Installation{}, errors.New("gone"))

		notes := "updated"
		if _, err := svc.UpdateQuotation(admin, 1, quotation.UpdateQuotationInput{Notes: &notes}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

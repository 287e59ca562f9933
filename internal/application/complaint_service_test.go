package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/domain/complaint"
	"github.com/sunspire/solar-crm/internal/domain/technician"
	"github.com/sunspire/solar-crm/internal/domain/user"
	"github.com/sunspire/solar-crm/internal/repository"
	"github.com/sunspire/solar-crm/internal/repository/mock_repository"
)

func setupComplaintMocks(t *testing.T) (*application.ComplaintService,
	*mock_repository.MockComplaintRepo, *mock_repository.MockTechnicianRepo, *mock_repository.MockUserRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockComplaint := mock_repository.NewMockComplaintRepo(ctrl)
	mockTech := mock_repository.NewMockTechnicianRepo(ctrl)
	mockUser := mock_repository.NewMockUserRepo(ctrl)
	mockAudit := mock_repository.NewMockAuditRepo(ctrl)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil).AnyTimes()

	repos := &repository.Repos{
		Complaint:  mockComplaint,
		Technician: mockTech,
		User:       mockUser,
		Audit:      mockAudit,
	}
	return application.NewComplaintService(repos), mockComplaint, mockTech, mockUser
}

func TestUpdateComplaintResolvedAt(t *testing.T) {
	t.Run("first move to resolved stamps the timestamp", func(t *testing.T) {
		svc, mockComplaint, _, _ := setupComplaintMocks(t)

		mockComplaint.EXPECT().GetComplaintByID(uint(3)).Return(complaint.Complaint{
			ComplaintID: 3, CustomerID: 5, Status: string(complaint.StatusInvestigating),
		}, nil)
		mockComplaint.EXPECT().SaveComplaint(gomock.Any()).DoAndReturn(func(cp *complaint.Complaint) error {
			if cp.ResolvedAt == nil {
				t.Fatal("expected ResolvedAt to be stamped")
			}
			return nil
		})

		status := string(complaint.StatusResolved)
		cp, err := svc.UpdateComplaint(admin, 3, complaint.UpdateComplaintInput{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cp.Status != string(complaint.StatusResolved) {
			t.Fatalf("expected resolved, got %s", cp.Status)
		}
	})

	t.Run("later edits keep the original timestamp", func(t *testing.T) {
		svc, mockComplaint, _, _ := setupComplaintMocks(t)

		stamped := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		mockComplaint.EXPECT().GetComplaintByID(uint(3)).Return(complaint.Complaint{
			ComplaintID: 3, CustomerID: 5,
			Status: string(complaint.StatusResolved), ResolvedAt: &stamped,
		}, nil)
		mockComplaint.EXPECT().SaveComplaint(gomock.Any()).DoAndReturn(func(cp *complaint.Complaint) error {
			if cp.ResolvedAt == nil || !cp.ResolvedAt.Equal(stamped) {
				t.Fatalf("expected original ResolvedAt preserved, got %v", cp.ResolvedAt)
			}
			return nil
		})

		status := string(complaint.StatusResolved)
		resolution := "replaced faulty inverter fuse"
		_, err := svc.UpdateComplaint(admin, 3, complaint.UpdateComplaintInput{
			Status: &status, Resolution: &resolution,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("customer cannot edit another customer's complaint", func(t *testing.T) {
		svc, mockComplaint, _, _ := setupComplaintMocks(t)

		mockComplaint.EXPECT().GetComplaintByID(uint(3)).Return(complaint.Complaint{
			ComplaintID: 3, CustomerID: 5,
		}, nil)

		other := application.Actor{ID: 8, Role: string(user.RoleCustomer)}
		title := "updated"
		_, err := svc.UpdateComplaint(other, 3, complaint.UpdateComplaintInput{Title: &title})
		if !errors.Is(err, application.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestComplaintAssignTechnician(t *testing.T) {
	t.Run("assignment keeps the complaint status", func(t *testing.T) {
		svc, mockComplaint, mockTech, _ := setupComplaintMocks(t)

		mockComplaint.EXPECT().GetComplaintByID(uint(3)).Return(complaint.Complaint{
			ComplaintID: 3, CustomerID: 5, Status: string(complaint.StatusOpen),
		}, nil)
		mockTech.EXPECT().GetTechnicianByID(uint(7)).Return(technician.Technician{
			TechID: 7, Status: string(technician.StatusActive),
		}, nil)
		mockComplaint.EXPECT().SaveComplaint(gomock.Any()).Return(nil)

		cp, err := svc.AssignTechnician(admin, 3, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cp.Status != string(complaint.StatusOpen) {
			t.Fatalf("expected status untouched, got %s", cp.Status)
		}
		if cp.AssignedTechnicianID == nil || *cp.AssignedTechnicianID != 7 {
			t.Fatal("expected technician 7 assigned")
		}
	})

	t.Run("unavailable technician is rejected", func(t *testing.T) {
		svc, mockComplaint, mockTech, _ := setupComplaintMocks(t)

		mockComplaint.EXPECT().GetComplaintByID(uint(3)).Return(complaint.Complaint{
			ComplaintID: 3, CustomerID: 5,
		}, nil)
		mockTech.EXPECT().GetTechnicianByID(uint(7)).Return(technician.Technician{
			TechID: 7, Status: string(technician.StatusOnLeave),
		}, nil)

		_, err := svc.AssignTechnician(admin, 3, 7)
		if !errors.Is(err, application.ErrTechnicianUnavailable) {
			t.Fatalf("expected ErrTechnicianUnavailable, got %v", err)
		}
	})

	t.Run("only admins assign", func(t *testing.T) {
		svc, _, _, _ := setupComplaintMocks(t)

		customer := application.Actor{ID: 5, Role: string(user.RoleCustomer)}
		if _, err := svc.AssignTechnician(customer, 3, 7); !errors.Is(err, application.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestListComplaintsScoping(t *testing.T) {
	t.Run("customers see only their own complaints", func(t *testing.T) {
		svc, mockComplaint, _, mockUser := setupComplaintMocks(t)

		mockComplaint.EXPECT().ListComplaintsByCustomer(uint(5)).Return([]complaint.Complaint{
			{ComplaintID: 1, CustomerID: 5, CustomerName: "5"},
		}, nil)
		mockUser.EXPECT().GetUserByID(uint(5)).Return(user.User{
			UID: 5, FirstName: "Asha", LastName: "Rao",
		}, nil)

		customer := application.Actor{ID: 5, Role: string(user.RoleCustomer)}
		out, err := svc.ListComplaints(customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].CustomerName != "Asha Rao" {
			t.Fatalf("unexpected list: %+v", out)
		}
	})

	t.Run("technicians see everything", func(t *testing.T) {
		svc, mockComplaint, _, _ := setupComplaintMocks(t)

		mockComplaint.EXPECT().ListComplaints().Return([]complaint.Complaint{
			{ComplaintID: 1, CustomerID: 5, CustomerName: "Rao Residence"},
			{ComplaintID: 2, CustomerID: 8, CustomerName: "Khan Villa"},
		}, nil)

		tech := application.Actor{ID: 9, Role: string(user.RoleTechnician)}
		out, err := svc.ListComplaints(tech)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 complaints, got %d", len(out))
		}
	})
}

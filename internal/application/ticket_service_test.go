package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/domain/ticket"
	"github.com/sunspire/solar-crm/internal/domain/user"
	"github.com/sunspire/solar-crm/internal/repository"
	"github.com/sunspire/solar-crm/internal/repository/mock_repository"
)

func setupTicketMocks(t *testing.T) (*application.TicketService, *mock_repository.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockTicket := mock_repository.NewMockTicketRepo(ctrl)
	mockTech := mock_repository.NewMockTechnicianRepo(ctrl)
	mockUser := mock_repository.NewMockUserRepo(ctrl)
	mockAudit := mock_repository.NewMockAuditRepo(ctrl)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil).AnyTimes()

	repos := &repository.Repos{
		Ticket:     mockTicket,
		Technician: mockTech,
		User:       mockUser,
		Audit:      mockAudit,
	}
	return application.NewTicketService(repos), mockTicket
}

func TestUpdateTicketResolvedAt(t *testing.T) {
	t.Run("first move to resolved stamps the timestamp", func(t *testing.T) {
		svc, mockTicket := setupTicketMocks(t)

		mockTicket.EXPECT().GetTicketByID(uint(4)).Return(ticket.Ticket{
			TicketID: 4, CustomerID: 5, Status: string(ticket.StatusInProgress),
		}, nil)
		mockTicket.EXPECT().SaveTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
			if tk.ResolvedAt == nil {
				t.Fatal("expected ResolvedAt to be stamped")
			}
			return nil
		})

		status := string(ticket.StatusResolved)
		tk, err := svc.UpdateTicket(admin, 4, ticket.UpdateTicketInput{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tk.Status != string(ticket.StatusResolved) {
			t.Fatalf("expected resolved, got %s", tk.Status)
		}
	})

	t.Run("later edits keep the original timestamp", func(t *testing.T) {
		svc, mockTicket := setupTicketMocks(t)

		stamped := time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC)
		mockTicket.EXPECT().GetTicketByID(uint(4)).Return(ticket.Ticket{
			TicketID: 4, CustomerID: 5,
			Status: string(ticket.StatusResolved), ResolvedAt: &stamped,
		}, nil)
		mockTicket.EXPECT().SaveTicket(gomock.Any()).DoAndReturn(func(tk *ticket.Ticket) error {
			if tk.ResolvedAt == nil || !tk.ResolvedAt.Equal(stamped) {
				t.Fatalf("expected original ResolvedAt preserved, got %v", tk.ResolvedAt)
			}
			return nil
		})

		status := string(ticket.StatusResolved)
		resp := "router firmware updated"
		_, err := svc.UpdateTicket(admin, 4, ticket.UpdateTicketInput{
			Status: &status, Response: &resp,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("technicians may work any customer's ticket", func(t *testing.T) {
		svc, mockTicket := setupTicketMocks(t)

		mockTicket.EXPECT().GetTicketByID(uint(4)).Return(ticket.Ticket{
			TicketID: 4, CustomerID: 5, Status: string(ticket.StatusOpen),
		}, nil)
		mockTicket.EXPECT().SaveTicket(gomock.Any()).Return(nil)

		tech := application.Actor{ID: 9, Role: string(user.RoleTechnician)}
		status := string(ticket.StatusInProgress)
		_, err := svc.UpdateTicket(tech, 4, ticket.UpdateTicketInput{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("customer cannot edit another customer's ticket", func(t *testing.T) {
		svc, mockTicket := setupTicketMocks(t)

		mockTicket.EXPECT().GetTicketByID(uint(4)).Return(ticket.Ticket{
			TicketID: 4, CustomerID: 5,
		}, nil)

		other := application.Actor{ID: 8, Role: string(user.RoleCustomer)}
		subject := "updated"
		_, err := svc.UpdateTicket(other, 4, ticket.UpdateTicketInput{Subject: &subject})
		if !errors.Is(err, application.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

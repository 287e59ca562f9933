package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/sunspire/solar-crm/internal/domain/ticket"
	"github.com/sunspire/solar-crm/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
)

type TicketService struct {
	Repos *repository.Repos
}

func NewTicketService(repos *repository.Repos) *TicketService {
	return &TicketService{
		Repos: repos,
	}
}

func (s *TicketService) ListTickets(actor Actor) ([]ticket.Ticket, error) {
	var (
		tickets []ticket.Ticket
		err     error
	)
	if actor.IsAdmin() || actor.IsTechnician() {
		tickets, err = s.Repos.Ticket.ListTickets()
	} else {
		tickets, err = s.Repos.Ticket.ListTicketsByCustomer(actor.ID)
	}
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		id := tickets[i].CustomerID
		tickets[i].CustomerName = enrichCustomerName(s.Repos.User, &id, tickets[i].CustomerName)
	}
	return tickets, nil
}

func (s *TicketService) FindTicketByID(actor Actor, id uint) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		return ticket.Ticket{}, ErrTicketNotFound
	}
	if !actor.CanHandle(t.CustomerID) {
		return ticket.Ticket{}, ErrForbidden
	}
	cid := t.CustomerID
	t.CustomerName = enrichCustomerName(s.Repos.User, &cid, t.CustomerName)
	return t, nil
}

func (s *TicketService) CreateTicket(actor Actor, input ticket.CreateTicketInput) (ticket.Ticket, error) {
	customerID := actor.ID
	if actor.IsAdmin() && input.CustomerID != nil {
		customerID = *input.CustomerID
	}
	t := ticket.Ticket{
		CustomerID:  customerID,
		Subject:     input.Subject,
		Description: input.Description,
		Priority:    "medium",
		Status:      string(ticket.StatusOpen),
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.Category != nil {
		t.Category = *input.Category
	}
	if u, err := s.Repos.User.GetUserByID(customerID); err == nil {
		t.CustomerName = u.FullName()
	}
	if err := s.Repos.Ticket.SaveTicket(&t); err != nil {
		return ticket.Ticket{}, err
	}
	return t, nil
}

func (s *TicketService) UpdateTicket(actor Actor, id uint, input ticket.UpdateTicketInput) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(id)
	if err != nil {
		return ticket.Ticket{}, ErrTicketNotFound
	}
	if !actor.CanHandle(t.CustomerID) {
		return ticket.Ticket{}, ErrForbidden
	}

	if input.Subject != nil {
		t.Subject = *input.Subject
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.Status != nil {
		if *input.Status == string(ticket.StatusResolved) && t.ResolvedAt == nil {
			now := time.Now()
			t.ResolvedAt = &now
		}
		t.Status = *input.Status
	}
	if input.Category != nil {
		t.Category = *input.Category
	}
	if input.Response != nil {
		t.Response = *input.Response
	}

	if err := s.Repos.Ticket.SaveTicket(&t); err != nil {
		return ticket.Ticket{}, err
	}
	return t, nil
}

func (s *TicketService) RemoveTicket(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if _, err := s.Repos.Ticket.GetTicketByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrTicketNotFound
		}
		return err
	}
	return s.Repos.Ticket.DeleteTicket(id)
}

func (s *TicketService) AssignTechnician(actor Actor, ticketID, technicianID uint) (ticket.Ticket, error) {
	if !actor.IsAdmin() {
		return ticket.Ticket{}, ErrForbidden
	}

	t, err := s.Repos.Ticket.GetTicketByID(ticketID)
	if err != nil {
		return ticket.Ticket{}, ErrTicketNotFound
	}

	tech, err := s.Repos.Technician.GetTechnicianByID(technicianID)
	if err != nil {
		return ticket.Ticket{}, ErrTechnicianNotFound
	}
	if !tech.Assignable() {
		return ticket.Ticket{}, fmt.Errorf("%w: status is %s", ErrTechnicianUnavailable, tech.Status)
	}

	t.AssignedToID = &tech.TechID
	if err := s.Repos.Ticket.SaveTicket(&t); err != nil {
		return ticket.Ticket{}, err
	}

	recordAudit(s.Repos, actor.ID, "ticket.assign", "ticket", itoa(t.TicketID),
		nil, map[string]interface{}{"technician_id": tech.TechID}, "")
	return t, nil
}

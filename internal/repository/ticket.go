package repository

import (
	"github.com/sunspire/solar-crm/internal/domain/ticket"
	"gorm.io/gorm"
)

type TicketRepo interface {
	ListTickets() ([]ticket.Ticket, error)
	ListTicketsByCustomer(customerID uint) ([]ticket.Ticket, error)
	ListTicketsByAssignee(technicianID uint) ([]ticket.Ticket, error)
	GetTicketByID(id uint) (ticket.Ticket, error)
	SaveTicket(t *ticket.Ticket) error
	DeleteTicket(id uint) error
	CountByStatus() (map[string]int64, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) ListTickets() ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListTicketsByCustomer(customerID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("customer_id = ?", customerID).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListTicketsByAssignee(technicianID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("assigned_to_id = ?", technicianID).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) GetTicketByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	if err := r.db.First(&t, id).Error; err != nil {
		return t, err
	}
	return t, nil
}

func (r *DBTicketRepo) SaveTicket(t *ticket.Ticket) error {
	return r.db.Save(t).Error
}

func (r *DBTicketRepo) DeleteTicket(id uint) error {
	return r.db.Delete(&ticket.Ticket{}, id).Error
}

func (r *DBTicketRepo) CountByStatus() (map[string]int64, error) {
	return countByStatus(r.db, &ticket.Ticket{})
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}

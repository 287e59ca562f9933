package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Technician   TechnicianRepo
	Catalog      CatalogRepo
	Quotation    QuotationRepo
	Installation InstallationRepo
	Complaint    ComplaintRepo
	Ticket       TicketRepo
	Audit        AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Technician:   NewTechnicianRepo(db),
		Catalog:      NewCatalogRepo(db),
		Quotation:    NewQuotationRepo(db),
		Installation: NewInstallationRepo(db),
		Complaint:    NewComplaintRepo(db),
		Ticket:       NewTicketRepo(db),
		Audit:        NewAuditRepo(db),
		db:           db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Technician:   r.Technician.WithTx(tx),
		Catalog:      r.Catalog.WithTx(tx),
		Quotation:    r.Quotation.WithTx(tx),
		Installation: r.Installation.WithTx(tx),
		Complaint:    r.Complaint.WithTx(tx),
		Ticket:       r.Ticket.WithTx(tx),
		Audit:        r.Audit.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside a database transaction with transactional repos.
// A container wired without a db runs fn against the repos as-is.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}

// countByStatus groups any model's rows by its status column. Missing
// statuses simply do not appear; callers treat absence as zero.
func countByStatus(db *gorm.DB, model interface{}) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := db.Model(model).Select("status, count(*) AS count").
		Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

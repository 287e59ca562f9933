package repository

import (
	"github.com/sunspire/solar-crm/internal/domain/quotation"
	"gorm.io/gorm"
)

type QuotationRepo interface {
	ListQuotations() ([]quotation.Quotation, error)
	ListQuotationsByCustomer(customerID uint) ([]quotation.Quotation, error)
	GetQuotationByID(id uint) (quotation.Quotation, error)
	SaveQuotation(q *quotation.Quotation) error
	DeleteQuotation(id uint) error
	CountByStatus() (map[string]int64, error)
	WithTx(tx *gorm.DB) QuotationRepo
}

type DBQuotationRepo struct {
	db *gorm.DB
}

func NewQuotationRepo(db *gorm.DB) *DBQuotationRepo {
	return &DBQuotationRepo{
		db: db,
	}
}

func (r *DBQuotationRepo) ListQuotations() ([]quotation.Quotation, error) {
	var quotes []quotation.Quotation
	err := r.db.Order("created_at desc").Find(&quotes).Error
	return quotes, err
}

func (r *DBQuotationRepo) ListQuotationsByCustomer(customerID uint) ([]quotation.Quotation, error) {
	var quotes []quotation.Quotation
	err := r.db.Where("customer_id = ?", customerID).Order("created_at desc").Find(&quotes).Error
	return quotes, err
}

func (r *DBQuotationRepo) GetQuotationByID(id uint) (quotation.Quotation, error) {
	var q quotation.Quotation
	if err := r.db.First(&q, id).Error; err != nil {
		return q, err
	}
	return q, nil
}

func (r *DBQuotationRepo) SaveQuotation(q *quotation.Quotation) error {
	return r.db.Save(q).Error
}

func (r *DBQuotationRepo) DeleteQuotation(id uint) error {
	return r.db.Delete(&quotation.Quotation{}, id).Error
}

func (r *DBQuotationRepo) CountByStatus() (map[string]int64, error) {
	return countByStatus(r.db, &quotation.Quotation{})
}

func (r *DBQuotationRepo) WithTx(tx *gorm.DB) QuotationRepo {
	if tx == nil {
		return r
	}
	return &DBQuotationRepo{
		db: tx,
	}
}

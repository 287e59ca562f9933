package repository

import (
	"time"

	"github.com/sunspire/solar-crm/internal/domain/installation"
	"gorm.io/gorm"
)

// MonthlyCount is one bucket of the dashboard's trailing monthly series.
type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type InstallationRepo interface {
	ListInstallations() ([]installation.Installation, error)
	ListInstallationsByCustomer(customerID uint) ([]installation.Installation, error)
	ListInstallationsByTechnician(technicianID uint) ([]installation.Installation, error)
	GetInstallationByID(id uint) (installation.Installation, error)
	GetInstallationByQuotationID(quotationID uint) (installation.Installation, error)
	SaveInstallation(i *installation.Installation) error
	DeleteInstallation(id uint) error
	UnassignTechnician(technicianID uint) error
	CountByStatus() (map[string]int64, error)
	MonthlyCounts(months int) ([]MonthlyCount, error)
	WithTx(tx *gorm.DB) InstallationRepo
}

type DBInstallationRepo struct {
	db *gorm.DB
}

func NewInstallationRepo(db *gorm.DB) *DBInstallationRepo {
	return &DBInstallationRepo{
		db: db,
	}
}

func (r *DBInstallationRepo) ListInstallations() ([]installation.Installation, error) {
	var installs []installation.Installation
	err := r.db.Order("created_at desc").Find(&installs).Error
	return installs, err
}

func (r *DBInstallationRepo) ListInstallationsByCustomer(customerID uint) ([]installation.Installation, error) {
	var installs []installation.Installation
	err := r.db.Where("customer_id = ?", customerID).Order("created_at desc").Find(&installs).Error
	return installs, err
}

func (r *DBInstallationRepo) ListInstallationsByTechnician(technicianID uint) ([]installation.Installation, error) {
	var installs []installation.Installation
	err := r.db.Where("technician_id = ?", technicianID).Order("created_at desc").Find(&installs).Error
	return installs, err
}

func (r *DBInstallationRepo) GetInstallationByID(id uint) (installation.Installation, error) {
	var i installation.Installation
	if err := r.db.First(&i, id).Error; err != nil {
		return i, err
	}
	return i, nil
}

func (r *DBInstallationRepo) GetInstallationByQuotationID(quotationID uint) (installation.Installation, error) {
	var i installation.Installation
	if err := r.db.Where("quotation_id = ?", quotationID).First(&i).Error; err != nil {
		return i, err
	}
	return i, nil
}

func (r *DBInstallationRepo) SaveInstallation(i *installation.Installation) error {
	return r.db.Save(i).Error
}

func (r *DBInstallationRepo) DeleteInstallation(id uint) error {
	return r.db.Delete(&installation.Installation{}, id).Error
}

// UnassignTechnician clears the technician reference on every installation
// that points at it. Used when a technician record is removed.
func (r *DBInstallationRepo) UnassignTechnician(technicianID uint) error {
	return r.db.Model(&installation.Installation{}).
		Where("technician_id = ?", technicianID).
		Update("technician_id", nil).Error
}

func (r *DBInstallationRepo) CountByStatus() (map[string]int64, error) {
	return countByStatus(r.db, &installation.Installation{})
}

// MonthlyCounts groups installation creation over the trailing N months.
func (r *DBInstallationRepo) MonthlyCounts(months int) ([]MonthlyCount, error) {
	var results []MonthlyCount
	since := time.Now().AddDate(0, -months, 0)
	err := r.db.Model(&installation.Installation{}).
		Select("to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, count(*) AS count").
		Where("created_at >= ?", since).
		Group("1").
		Order("1").
		Scan(&results).Error
	return results, err
}

func (r *DBInstallationRepo) WithTx(tx *gorm.DB) InstallationRepo {
	if tx == nil {
		return r
	}
	return &DBInstallationRepo{
		db: tx,
	}
}

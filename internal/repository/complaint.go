package repository

import (
	"github.com/sunspire/solar-crm/internal/domain/complaint"
	"gorm.io/gorm"
)

type ComplaintRepo interface {
	ListComplaints() ([]complaint.Complaint, error)
	ListComplaintsByCustomer(customerID uint) ([]complaint.Complaint, error)
	ListComplaintsByTechnician(technicianID uint) ([]complaint.Complaint, error)
	GetComplaintByID(id uint) (complaint.Complaint, error)
	SaveComplaint(cp *complaint.Complaint) error
	DeleteComplaint(id uint) error
	CountByStatus() (map[string]int64, error)
	WithTx(tx *gorm.DB) ComplaintRepo
}

type DBComplaintRepo struct {
	db *gorm.DB
}

func NewComplaintRepo(db *gorm.DB) *DBComplaintRepo {
	return &DBComplaintRepo{
		db: db,
	}
}

func (r *DBComplaintRepo) ListComplaints() ([]complaint.Complaint, error) {
	var complaints []complaint.Complaint
	err := r.db.Order("created_at desc").Find(&complaints).Error
	return complaints, err
}

func (r *DBComplaintRepo) ListComplaintsByCustomer(customerID uint) ([]complaint.Complaint, error) {
	var complaints []complaint.Complaint
	err := r.db.Where("customer_id = ?", customerID).Order("created_at desc").Find(&complaints).Error
	return complaints, err
}

func (r *DBComplaintRepo) ListComplaintsByTechnician(technicianID uint) ([]complaint.Complaint, error) {
	var complaints []complaint.Complaint
	err := r.db.Where("assigned_technician_id = ?", technicianID).Order("created_at desc").Find(&complaints).Error
	return complaints, err
}

func (r *DBComplaintRepo) GetComplaintByID(id uint) (complaint.Complaint, error) {
	var cp complaint.Complaint
	if err := r.db.First(&cp, id).Error; err != nil {
		return cp, err
	}
	return cp, nil
}

func (r *DBComplaintRepo) SaveComplaint(cp *complaint.Complaint) error {
	return r.db.Save(cp).Error
}

func (r *DBComplaintRepo) DeleteComplaint(id uint) error {
	return r.db.Delete(&complaint.Complaint{}, id).Error
}

func (r *DBComplaintRepo) CountByStatus() (map[string]int64, error) {
	return countByStatus(r.db, &complaint.Complaint{})
}

func (r *DBComplaintRepo) WithTx(tx *gorm.DB) ComplaintRepo {
	if tx == nil {
		return r
	}
	return &DBComplaintRepo{
		db: tx,
	}
}

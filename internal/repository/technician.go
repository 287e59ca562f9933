package repository

import (
	"github.com/sunspire/solar-crm/internal/domain/technician"
	"gorm.io/gorm"
)

type TechnicianRepo interface {
	ListTechnicians() ([]technician.Technician, error)
	GetTechnicianByID(id uint) (technician.Technician, error)
	GetTechnicianByUserID(userID uint) (technician.Technician, error)
	SaveTechnician(t *technician.Technician) error
	DeleteTechnician(id uint) error
	CountByStatus() (map[string]int64, error)
	WithTx(tx *gorm.DB) TechnicianRepo
}

type DBTechnicianRepo struct {
	db *gorm.DB
}

func NewTechnicianRepo(db *gorm.DB) *DBTechnicianRepo {
	return &DBTechnicianRepo{
		db: db,
	}
}

func (r *DBTechnicianRepo) ListTechnicians() ([]technician.Technician, error) {
	var techs []technician.Technician
	err := r.db.Order("tech_id").Find(&techs).Error
	return techs, err
}

func (r *DBTechnicianRepo) GetTechnicianByID(id uint) (technician.Technician, error) {
	var t technician.Technician
	if err := r.db.First(&t, id).Error; err != nil {
		return t, err
	}
	return t, nil
}

func (r *DBTechnicianRepo) GetTechnicianByUserID(userID uint) (technician.Technician, error) {
	var t technician.Technician
	if err := r.db.Where("user_id = ?", userID).First(&t).Error; err != nil {
		return t, err
	}
	return t, nil
}

func (r *DBTechnicianRepo) SaveTechnician(t *technician.Technician) error {
	return r.db.Save(t).Error
}

func (r *DBTechnicianRepo) DeleteTechnician(id uint) error {
	return r.db.Delete(&technician.Technician{}, id).Error
}

func (r *DBTechnicianRepo) CountByStatus() (map[string]int64, error) {
	return countByStatus(r.db, &technician.Technician{})
}

func (r *DBTechnicianRepo) WithTx(tx *gorm.DB) TechnicianRepo {
	if tx == nil {
		return r
	}
	return &DBTechnicianRepo{
		db: tx,
	}
}

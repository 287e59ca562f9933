package repository

import (
	"github.com/sunspire/solar-crm/internal/domain/catalog"
	"gorm.io/gorm"
)

type CatalogRepo interface {
	ListServices(activeOnly bool) ([]catalog.Service, error)
	GetServiceByID(id uint) (catalog.Service, error)
	GetServiceByName(name string) (catalog.Service, error)
	SaveService(s *catalog.Service) error
	DeactivateService(id uint) error
	WithTx(tx *gorm.DB) CatalogRepo
}

type DBCatalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) *DBCatalogRepo {
	return &DBCatalogRepo{
		db: db,
	}
}

func (r *DBCatalogRepo) ListServices(activeOnly bool) ([]catalog.Service, error) {
	var services []catalog.Service
	query := r.db.Order("service_id")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&services).Error
	return services, err
}

func (r *DBCatalogRepo) GetServiceByID(id uint) (catalog.Service, error) {
	var s catalog.Service
	if err := r.db.First(&s, id).Error; err != nil {
		return s, err
	}
	return s, nil
}

func (r *DBCatalogRepo) GetServiceByName(name string) (catalog.Service, error) {
	var s catalog.Service
	if err := r.db.Where("name = ?", name).First(&s).Error; err != nil {
		return s, err
	}
	return s, nil
}

func (r *DBCatalogRepo) SaveService(s *catalog.Service) error {
	return r.db.Save(s).Error
}

// DeactivateService soft-deletes: the row survives for old quotations.
func (r *DBCatalogRepo) DeactivateService(id uint) error {
	return r.db.Model(&catalog.Service{}).Where("service_id = ?", id).
		Update("is_active", false).Error
}

func (r *DBCatalogRepo) WithTx(tx *gorm.DB) CatalogRepo {
	if tx == nil {
		return r
	}
	return &DBCatalogRepo{
		db: tx,
	}
}

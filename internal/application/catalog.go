package application

import (
	"errors"
	"log"
	"os"

	"github.com/sunspire/solar-crm/internal/domain/catalog"
	"github.com/sunspire/solar-crm/internal/repository"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound = errors.New("service not found")
)

type CatalogService struct {
	Repos *repository.Repos
}

func NewCatalogService(repos *repository.Repos) *CatalogService {
	return &CatalogService{
		Repos: repos,
	}
}

func (s *CatalogService) ListServices(includeInactive bool) ([]catalog.Service, error) {
	return s.Repos.Catalog.ListServices(!includeInactive)
}

func (s *CatalogService) FindServiceByID(id uint) (catalog.Service, error) {
	svc, err := s.Repos.Catalog.GetServiceByID(id)
	if err != nil {
		return catalog.Service{}, ErrServiceNotFound
	}
	return svc, nil
}

func (s *CatalogService) CreateService(input catalog.CreateServiceInput) (catalog.Service, error) {
	svc := catalog.Service{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		IsActive:    true,
	}
	if err := s.Repos.Catalog.SaveService(&svc); err != nil {
		return catalog.Service{}, err
	}
	return svc, nil
}

func (s *CatalogService) UpdateService(id uint, input catalog.UpdateServiceInput) (catalog.Service, error) {
	svc, err := s.Repos.Catalog.GetServiceByID(id)
	if err != nil {
		return catalog.Service{}, ErrServiceNotFound
	}

	if input.Name != nil {
		svc.Name = *input.Name
	}
	if input.Description != nil {
		svc.Description = *input.Description
	}
	if input.Category != nil {
		svc.Category = *input.Category
	}
	if input.Price != nil {
		svc.Price = *input.Price
	}
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}

	if err := s.Repos.Catalog.SaveService(&svc); err != nil {
		return catalog.Service{}, err
	}
	return svc, nil
}

// RemoveService soft-deletes by flipping IsActive.
func (s *CatalogService) RemoveService(id uint) error {
	if _, err := s.Repos.Catalog.GetServiceByID(id); err != nil {
		return ErrServiceNotFound
	}
	return s.Repos.Catalog.DeactivateService(id)
}

// SeedFromFile inserts catalog entries from a YAML file, skipping names that
// already exist. Missing file is not an error; a fresh deployment simply
// starts with an empty catalog.
func (s *CatalogService) SeedFromFile(path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Seed file %s not found, skipping catalog seed", path)
			return nil
		}
		return err
	}

	var seed catalog.SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return err
	}

	created := 0
	for _, entry := range seed.Services {
		_, err := s.Repos.Catalog.GetServiceByName(entry.Name)
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		svc := catalog.Service{
			Name:        entry.Name,
			Description: entry.Description,
			Category:    entry.Category,
			Price:       entry.Price,
			IsActive:    true,
		}
		if err := s.Repos.Catalog.SaveService(&svc); err != nil {
			return err
		}
		created++
	}
	if created > 0 {
		log.Printf("Seeded %d catalog services from %s", created, path)
	}
	return nil
}

package application

import (
	"encoding/json"
	"errors"

	"github.com/sunspire/solar-crm/internal/domain/technician"
	"github.com/sunspire/solar-crm/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrTechnicianNotFound = errors.New("technician not found")
)

type TechnicianService struct {
	Repos *repository.Repos
}

func NewTechnicianService(repos *repository.Repos) *TechnicianService {
	return &TechnicianService{
		Repos: repos,
	}
}

func toJSONList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}

func (s *TechnicianService) ListTechnicians() ([]technician.Technician, error) {
	return s.Repos.Technician.ListTechnicians()
}

func (s *TechnicianService) FindTechnicianByID(id uint) (technician.Technician, error) {
	tech, err := s.Repos.Technician.GetTechnicianByID(id)
	if err != nil {
		return technician.Technician{}, ErrTechnicianNotFound
	}
	return tech, nil
}

func (s *TechnicianService) CreateTechnician(input technician.CreateTechnicianInput) (technician.Technician, error) {
	if input.UserID != nil {
		if _, err := s.Repos.User.GetUserByID(*input.UserID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return technician.Technician{}, ErrUserNotFound
			}
			return technician.Technician{}, err
		}
	}

	tech := technician.Technician{
		UserID:          input.UserID,
		Name:            input.Name,
		Specializations: toJSONList(input.Specializations),
		ExperienceYears: input.ExperienceYears,
		Certifications:  toJSONList(input.Certifications),
		IsAvailable:     true,
		Status:          string(technician.StatusActive),
	}
	if input.Status != nil {
		tech.Status = *input.Status
	}
	if err := s.Repos.Technician.SaveTechnician(&tech); err != nil {
		return technician.Technician{}, err
	}
	return tech, nil
}

func (s *TechnicianService) UpdateTechnician(id uint, input technician.UpdateTechnicianInput) (technician.Technician, error) {
	tech, err := s.Repos.Technician.GetTechnicianByID(id)
	if err != nil {
		return technician.Technician{}, ErrTechnicianNotFound
	}

	if input.Name != nil {
		tech.Name = *input.Name
	}
	if input.Specializations != nil {
		tech.Specializations = toJSONList(*input.Specializations)
	}
	if input.ExperienceYears != nil {
		tech.ExperienceYears = *input.ExperienceYears
	}
	if input.Certifications != nil {
		tech.Certifications = toJSONList(*input.Certifications)
	}
	if input.IsAvailable != nil {
		tech.IsAvailable = *input.IsAvailable
	}
	if input.Status != nil {
		tech.Status = *input.Status
	}
	if input.Rating != nil {
		tech.Rating = *input.Rating
	}
	if input.CompletionRate != nil {
		tech.CompletionRate = *input.CompletionRate
	}

	if err := s.Repos.Technician.SaveTechnician(&tech); err != nil {
		return technician.Technician{}, err
	}
	return tech, nil
}

// RemoveTechnician deletes the technician and clears installation
// assignments. The backing user account, if any, is left alone.
func (s *TechnicianService) RemoveTechnician(id uint) error {
	if _, err := s.Repos.Technician.GetTechnicianByID(id); err != nil {
		return ErrTechnicianNotFound
	}
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Installation.UnassignTechnician(id); err != nil {
			return err
		}
		return tx.Technician.DeleteTechnician(id)
	})
}

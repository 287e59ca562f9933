package application

import (
	"errors"
	"time"

	"github.com/sunspire/solar-crm/internal/api/middleware"
	"github.com/sunspire/solar-crm/internal/domain/technician"
	"github.com/sunspire/solar-crm/internal/domain/user"
	"github.com/sunspire/solar-crm/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// SessionTTL is how long issued tokens stay valid. The login cookie carries
// the same lifetime so cookie and token expire together.
const SessionTTL = 24 * time.Hour

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) (user.User, error) {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Email:        input.Email,
		PasswordHash: string(hashed),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         string(user.RoleCustomer),
		Status:       string(user.StatusActive),
	}
	if input.Role != nil {
		usr.Role = *input.Role
	}
	if input.Phone != nil {
		usr.Phone = *input.Phone
	}
	if input.Address != nil {
		usr.Address = *input.Address
	}

	// A technician-role user always has a technician record.
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.User.SaveUser(&usr); err != nil {
			return err
		}
		if usr.Role == string(user.RoleTechnician) {
			return tx.Technician.SaveTechnician(&technician.Technician{
				UserID:      &usr.UID,
				Name:        usr.FullName(),
				IsAvailable: true,
				Status:      string(technician.StatusActive),
			})
		}
		return nil
	})
	if err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) LoginUser(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if usr.Status != string(user.StatusActive) {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Email, usr.Role, SessionTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.GetAllUsers()
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}

// UpdateUser applies a partial update. Role transitions keep the
// user/technician invariant: switching to technician provisions a
// technician record, switching away removes it, both in the same
// transaction as the user row.
func (s *UserService) UpdateUser(id uint, input user.UpdateUserInput) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	oldRole := usr.Role

	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrPasswordHashFailure
		}
		usr.PasswordHash = string(hashed)
	}
	if input.Email != nil {
		usr.Email = *input.Email
	}
	if input.FirstName != nil {
		usr.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		usr.LastName = *input.LastName
	}
	if input.Role != nil {
		usr.Role = *input.Role
	}
	if input.Status != nil {
		usr.Status = *input.Status
	}
	if input.Phone != nil {
		usr.Phone = *input.Phone
	}
	if input.Address != nil {
		usr.Address = *input.Address
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.User.SaveUser(&usr); err != nil {
			return err
		}
		switch {
		case oldRole != string(user.RoleTechnician) && usr.Role == string(user.RoleTechnician):
			if _, err := tx.Technician.GetTechnicianByUserID(usr.UID); err == nil {
				return nil
			} else if err != gorm.ErrRecordNotFound {
				return err
			}
			return tx.Technician.SaveTechnician(&technician.Technician{
				UserID:      &usr.UID,
				Name:        usr.FullName(),
				IsAvailable: true,
				Status:      string(technician.StatusActive),
			})
		case oldRole == string(user.RoleTechnician) && usr.Role != string(user.RoleTechnician):
			tech, err := tx.Technician.GetTechnicianByUserID(usr.UID)
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			if err != nil {
				return err
			}
			if err := tx.Installation.UnassignTechnician(tech.TechID); err != nil {
				return err
			}
			return tx.Technician.DeleteTechnician(tech.TechID)
		}
		return nil
	})
	if err != nil {
		return user.User{}, err
	}
	return usr, nil
}

// RemoveUser hard-deletes a user. A technician-role user takes their
// technician record with them; installations keep their rows but lose the
// assignment.
func (s *UserService) RemoveUser(id uint) error {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return ErrUserNotFound
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if usr.Role == string(user.RoleTechnician) {
			tech, err := tx.Technician.GetTechnicianByUserID(usr.UID)
			switch err {
			case nil:
				if err := tx.Installation.UnassignTechnician(tech.TechID); err != nil {
					return err
				}
				if err := tx.Technician.DeleteTechnician(tech.TechID); err != nil {
					return err
				}
			case gorm.ErrRecordNotFound:
				// invariant already broken elsewhere, nothing to cascade
			default:
				return err
			}
		}
		return tx.User.DeleteUser(id)
	})
}

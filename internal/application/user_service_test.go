package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sunspire/solar-crm/internal/api/middleware"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/internal/domain/technician"
	"github.com/sunspire/solar-crm/internal/domain/user"
	"github.com/sunspire/solar-crm/internal/repository"
	"github.com/sunspire/solar-crm/internal/repository/mock_repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserMocks(t *testing.T) (*application.UserService,
	*mock_repository.MockUserRepo, *mock_repository.MockTechnicianRepo, *mock_repository.MockInstallationRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUser := mock_repository.NewMockUserRepo(ctrl)
	mockTech := mock_repository.NewMockTechnicianRepo(ctrl)
	mockInst := mock_repository.NewMockInstallationRepo(ctrl)

	repos := &repository.Repos{
		User:         mockUser,
		Technician:   mockTech,
		Installation: mockInst,
	}
	return application.NewUserService(repos), mockUser, mockTech, mockInst
}

func strptr(s string) *string { return &s }

func TestRegisterUser(t *testing.T) {
	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc, mockUser, _, _ := setupUserMocks(t)

		mockUser.EXPECT().GetUserByEmail("asha@example.com").Return(user.User{UID: 42}, nil)

		_, err := svc.RegisterUser(user.CreateUserInput{
			Email: "asha@example.com", Password: "secret1", FirstName: "Asha", LastName: "Rao",
		})
		if !errors.Is(err, application.ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("default role is customer with no technician record", func(t *testing.T) {
		svc, mockUser, _, _ := setupUserMocks(t)

		mockUser.EXPECT().GetUserByEmail("asha@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
		mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
			u.UID = 42
			return nil
		})

		created, err := svc.RegisterUser(user.CreateUserInput{
			Email: "asha@example.com", Password: "secret1", FirstName: "Asha", LastName: "Rao",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Role != string(user.RoleCustomer) {
			t.Fatalf("expected customer, got %s", created.Role)
		}
		if created.PasswordHash == "secret1" || created.PasswordHash == "" {
			t.Fatal("expected password stored hashed")
		}
	})

	t.Run("technician registration provisions a technician record", func(t *testing.T) {
		svc, mockUser, mockTech, _ := setupUserMocks(t)

		mockUser.EXPECT().GetUserByEmail("tariq@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
		mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
			u.UID = 9
			return nil
		})
		mockTech.EXPECT().SaveTechnician(gomock.Any()).DoAndReturn(func(tech *technician.Technician) error {
			if tech.UserID == nil || *tech.UserID != 9 {
				t.Fatal("expected technician linked to user 9")
			}
			if tech.Name != "Tariq Khan" {
				t.Fatalf("expected technician named after the user, got %q", tech.Name)
			}
			return nil
		})

		_, err := svc.RegisterUser(user.CreateUserInput{
			Email: "tariq@example.com", Password: "secret1", FirstName: "Tariq", LastName: "Khan",
			Role: strptr(string(user.RoleTechnician)),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLoginUser(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		svc, mockUser, _, _ := setupUserMocks(t)

		orig := middleware.GenerateToken
		middleware.GenerateToken = func(userID uint, email, role string, _ time.Duration) (string, error) {
			return "stub-token", nil
		}
		t.Cleanup(func() { middleware.GenerateToken = orig })

		mockUser.EXPECT().GetUserByEmail("asha@example.com").Return(user.User{
			UID: 42, Email: "asha@example.com", PasswordHash: string(hashed),
			Status: string(user.StatusActive),
		}, nil)

		usr, token, err := svc.LoginUser("asha@example.com", "secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "stub-token" || usr.UID != 42 {
			t.Fatalf("unexpected login result: %v / %q", usr.UID, token)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mockUser, _, _ := setupUserMocks(t)

		mockUser.EXPECT().GetUserByEmail("asha@example.com").Return(user.User{
			UID: 42, PasswordHash: string(hashed), Status: string(user.StatusActive),
		}, nil)

		if _, _, err := svc.LoginUser("asha@example.com", "wrong"); !errors.Is(err, application.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive user cannot log in", func(t *testing.T) {
		svc, mockUser, _, _ := setupUserMocks(t)

		mockUser.EXPECT().GetUserByEmail("asha@example.com").Return(user.User{
			UID: 42, PasswordHash: string(hashed), Status: string(user.StatusInactive),
		}, nil)

		if _, _, err := svc.LoginUser("asha@example.com", "secret1"); !errors.Is(err, application.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, mockUser, _, _ := setupUserMocks(t)

		mockUser.EXPECT().GetUserByEmail("ghost@example.com").Return(user.User{}, gorm.ErrRecordNotFound)

		if _, _, err := svc.LoginUser("ghost@example.com", "secret1"); !errors.Is(err, application.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestUpdateUserRoleTransitions(t *testing.T) {
	t.Run("promotion to technician provisions a record", func(t *testing.T) {
		svc, mockUser, mockTech, _ := setupUserMocks(t)

		mockUser.EXPECT().GetUserByID(uint(42)).Return(user.User{
			UID: 42, Role: string(user.RoleCustomer), FirstName: "Asha", LastName: "Rao",
		}, nil)
		mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)
		mockTech.EXPECT().GetTechnicianByUserID(uint(42)).Return(technician.Technician{}, gorm.ErrRecordNotFound)
		mockTech.EXPECT().SaveTechnician(gomock.Any()).Return(nil)

		_, err := svc.UpdateUser(42, user.UpdateUserInput{Role: strptr(string(user.RoleTechnician))})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("promotion is idempotent when a record already exists", func(t *testing.T) {
		svc, mockUser, mockTech, _ := setupUserMocks(t)

		mockUser.EXPECT().GetUserByID(uint(42)).Return(user.User{
			UID: 42, Role: string(user.RoleCustomer),
		}, nil)
		mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)
		mockTech.EXPECT().GetTechnicianByUserID(uint(42)).Return(technician.Technician{TechID: 7}, nil)

		_, err := svc.UpdateUser(42, user.UpdateUserInput{Role: strptr(string(user.RoleTechnician))})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("demotion removes the technician record and unassigns work", func(t *testing.T) {
		svc, mockUser, mockTech, mockInst := setupUserMocks(t)

		mockUser.EXPECT().GetUserByID(uint(9)).Return(user.User{
			UID: 9, Role: string(user.RoleTechnician),
		}, nil)
		mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)
		mockTech.EXPECT().GetTechnicianByUserID(uint(9)).Return(technician.Technician{TechID: 7}, nil)
		mockInst.EXPECT().UnassignTechnician(uint(7)).Return(nil)
		mockTech.EXPECT().DeleteTechnician(uint(7)).Return(nil)

		_, err := svc.UpdateUser(9, user.UpdateUserInput{Role: strptr(string(user.RoleCustomer))})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRemoveUserCascade(t *testing.T) {
	t.Run("deleting a technician user cascades", func(t *testing.T) {
		svc, mockUser, mockTech, mockInst := setupUserMocks(t)

		mockUser.EXPECT().GetUserByID(uint(9)).Return(user.User{
			UID: 9, Role: string(user.RoleTechnician),
		}, nil)
		mockTech.EXPECT().GetTechnicianByUserID(uint(9)).Return(technician.Technician{TechID: 7}, nil)
		mockInst.EXPECT().UnassignTechnician(uint(7)).Return(nil)
		mockTech.EXPECT().DeleteTechnician(uint(7)).Return(nil)
		mockUser.EXPECT().DeleteUser(uint(9)).Return(nil)

		if err := svc.RemoveUser(9); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("deleting a customer touches no technician state", func(t *testing.T) {
		svc, mockUser, _, _ := setupUserMocks(t)

		mockUser.EXPECT().GetUserByID(uint(42)).Return(user.User{
			UID: 42, Role: string(user.RoleCustomer),
		}, nil)
		mockUser.EXPECT().DeleteUser(uint(42)).Return(nil)

		if err := svc.RemoveUser(42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, mockUser, _, _ := setupUserMocks(t)

		mockUser.EXPECT().GetUserByID(uint(99)).Return(user.User{}, gorm.ErrRecordNotFound)

		if err := svc.RemoveUser(99); !errors.Is(err, application.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

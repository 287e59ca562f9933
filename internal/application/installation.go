package application

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sunspire/solar-crm/internal/domain/installation"
	"github.com/sunspire/solar-crm/internal/domain/quotation"
	"github.com/sunspire/solar-crm/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInstallationNotFound  = errors.New("installation not found")
	ErrAlreadyConverted      = errors.New("quotation has already been converted to an installation")
	ErrNotConvertible        = errors.New("only pending or approved quotations can be converted")
	ErrTechnicianUnavailable = errors.New("technician is not active and cannot be assigned")
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

type InstallationService struct {
	Repos *repository.Repos
}

func NewInstallationService(repos *repository.Repos) *InstallationService {
	return &InstallationService{
		Repos: repos,
	}
}

// ListInstallations scopes by actor: admins see all, technicians the jobs
// assigned to them, customers their own.
func (s *InstallationService) ListInstallations(actor Actor) ([]installation.Installation, error) {
	var (
		installs []installation.Installation
		err      error
	)
	switch {
	case actor.IsAdmin():
		installs, err = s.Repos.Installation.ListInstallations()
	case actor.IsTechnician():
		tech, terr := s.Repos.Technician.GetTechnicianByUserID(actor.ID)
		if terr != nil {
			return []installation.Installation{}, nil
		}
		installs, err = s.Repos.Installation.ListInstallationsByTechnician(tech.TechID)
	default:
		installs, err = s.Repos.Installation.ListInstallationsByCustomer(actor.ID)
	}
	if err != nil {
		return nil, err
	}
	for i := range installs {
		id := installs[i].CustomerID
		installs[i].CustomerName = enrichCustomerName(s.Repos.User, &id, installs[i].CustomerName)
	}
	return installs, nil
}

// canAccess allows the owner, admins, and the technician the installation is
// assigned to.
func (s *InstallationService) canAccess(actor Actor, inst installation.Installation) bool {
	if actor.CanTouch(inst.CustomerID) {
		return true
	}
	if actor.IsTechnician() && inst.TechnicianID != nil {
		tech, err := s.Repos.Technician.GetTechnicianByUserID(actor.ID)
		return err == nil && tech.TechID == *inst.TechnicianID
	}
	return false
}

func (s *InstallationService) FindInstallationByID(actor Actor, id uint) (installation.Installation, error) {
	inst, err := s.Repos.Installation.GetInstallationByID(id)
	if err != nil {
		return installation.Installation{}, ErrInstallationNotFound
	}
	if !s.canAccess(actor, inst) {
		return installation.Installation{}, ErrForbidden
	}
	cid := inst.CustomerID
	inst.CustomerName = enrichCustomerName(s.Repos.User, &cid, inst.CustomerName)
	return inst, nil
}

func (s *InstallationService) CreateInstallation(actor Actor, input installation.CreateInstallationInput) (installation.Installation, error) {
	if !actor.IsAdmin() && actor.ID != input.CustomerID {
		return installation.Installation{}, ErrForbidden
	}
	inst := installation.Installation{
		CustomerID:       input.CustomerID,
		CustomerName:     input.CustomerName,
		Address:          input.Address,
		Capacity:         input.Capacity,
		TotalCost:        input.TotalCost,
		Status:           string(installation.StatusPending),
		InstallationDate: input.InstallationDate,
	}
	if input.Notes != nil {
		inst.Notes = *input.Notes
	}
	if err := s.Repos.Installation.SaveInstallation(&inst); err != nil {
		return installation.Installation{}, err
	}
	return inst, nil
}

// UpdateInstallation applies a partial update. CompletionDate is stamped
// exactly once, on the first transition into completed.
func (s *InstallationService) UpdateInstallation(actor Actor, id uint, input installation.UpdateInstallationInput) (installation.Installation, error) {
	inst, err := s.Repos.Installation.GetInstallationByID(id)
	if err != nil {
		return installation.Installation{}, ErrInstallationNotFound
	}
	if !s.canAccess(actor, inst) {
		return installation.Installation{}, ErrForbidden
	}

	if input.CustomerName != nil {
		inst.CustomerName = *input.CustomerName
	}
	if input.Address != nil {
		inst.Address = *input.Address
	}
	if input.Capacity != nil {
		inst.Capacity = *input.Capacity
	}
	if input.TotalCost != nil {
		inst.TotalCost = *input.TotalCost
	}
	if input.Status != nil {
		if *input.Status == string(installation.StatusCompleted) && inst.CompletionDate == nil {
			now := time.Now()
			inst.CompletionDate = &now
		}
		inst.Status = *input.Status
	}
	if input.InstallationDate != nil {
		inst.InstallationDate = input.InstallationDate
	}
	if input.Progress != nil {
		inst.Progress = *input.Progress
	}
	if input.Notes != nil {
		inst.Notes = *input.Notes
	}
	if input.PhotoURL != nil {
		inst.PhotoURL = *input.PhotoURL
	}

	if err := s.Repos.Installation.SaveInstallation(&inst); err != nil {
		return installation.Installation{}, err
	}
	return inst, nil
}

func (s *InstallationService) RemoveInstallation(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if _, err := s.Repos.Installation.GetInstallationByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrInstallationNotFound
		}
		return err
	}
	return s.Repos.Installation.DeleteInstallation(id)
}

// ConvertFromQuotation turns a pending or approved quotation into an
// installation. The installation insert and the quotation status flip run in
// one transaction so a crash cannot leave a converted quotation without its
// installation or vice versa.
//
// A quotation whose customer no longer resolves is still convertible: the
// acting admin becomes the owner, and the substitution is written to both
// the installation note and the audit log.
func (s *InstallationService) ConvertFromQuotation(actor Actor, quotationID uint) (installation.Installation, error) {
	if !actor.IsAdmin() {
		return installation.Installation{}, ErrForbidden
	}

	q, err := s.Repos.Quotation.GetQuotationByID(quotationID)
	if err != nil {
		return installation.Installation{}, ErrQuotationNotFound
	}

	if _, err := s.Repos.Installation.GetInstallationByQuotationID(quotationID); err == nil {
		return installation.Installation{}, ErrAlreadyConverted
	} else if err != gorm.ErrRecordNotFound {
		return installation.Installation{}, err
	}

	if !q.Convertible() {
		return installation.Installation{}, ErrNotConvertible
	}

	customerID, note, fellBack := s.resolveOwner(q, actor)

	inst := installation.Installation{
		QuotationID:  &q.QuotationID,
		CustomerID:   customerID,
		CustomerName: q.CustomerName,
		Address:      q.PropertyAddress,
		Capacity:     q.SystemSize,
		TotalCost:    q.EstimatedCost,
		Status:       string(installation.StatusPending),
		Notes:        note,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Installation.SaveInstallation(&inst); err != nil {
			return err
		}
		q.Status = string(quotation.StatusConverted)
		return tx.Quotation.SaveQuotation(&q)
	})
	if err != nil {
		return installation.Installation{}, err
	}

	msg := ""
	if fellBack {
		msg = fmt.Sprintf("quotation customer unresolvable, ownership assigned to admin %d", actor.ID)
	}
	recordAudit(s.Repos, actor.ID, "quotation.convert", "installation", itoa(inst.InstallationID),
		map[string]interface{}{"quotation_id": q.QuotationID},
		map[string]interface{}{"customer_id": customerID, "capacity": inst.Capacity, "total_cost": inst.TotalCost},
		msg)
	return inst, nil
}

// resolveOwner validates the quotation's customer reference and falls back
// to the acting admin when it does not resolve, so the installation insert
// cannot trip the customer foreign key.
func (s *InstallationService) resolveOwner(q quotation.Quotation, actor Actor) (uint, string, bool) {
	note := fmt.Sprintf("Converted from quotation #%d", q.QuotationID)
	if q.CustomerID != nil {
		if _, err := s.Repos.User.GetUserByID(*q.CustomerID); err == nil {
			return *q.CustomerID, note, false
		}
	}
	return actor.ID, note + " (original customer unresolvable, reassigned to converting admin)", true
}

// AssignTechnician binds an active technician to an installation. The first
// assignment on a pending installation advances it to in_progress; later
// reassignments leave status alone.
func (s *InstallationService) AssignTechnician(actor Actor, installationID, technicianID uint) (installation.Installation, error) {
	if !actor.IsAdmin() {
		return installation.Installation{}, ErrForbidden
	}

	inst, err := s.Repos.Installation.GetInstallationByID(installationID)
	if err != nil {
		return installation.Installation{}, ErrInstallationNotFound
	}

	tech, err := s.Repos.Technician.GetTechnicianByID(technicianID)
	if err != nil {
		return installation.Installation{}, ErrTechnicianNotFound
	}
	if !tech.Assignable() {
		return installation.Installation{}, fmt.Errorf("%w: status is %s", ErrTechnicianUnavailable, tech.Status)
	}

	inst.TechnicianID = &tech.TechID
	if inst.Status == string(installation.StatusPending) {
		inst.Status = string(installation.StatusInProgress)
	}
	if err := s.Repos.Installation.SaveInstallation(&inst); err != nil {
		return installation.Installation{}, err
	}

	recordAudit(s.Repos, actor.ID, "installation.assign", "installation", itoa(inst.InstallationID),
		nil, map[string]interface{}{"technician_id": tech.TechID}, "")
	return inst, nil
}

package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/sunspire/solar-crm/internal/domain/complaint"
	"github.com/sunspire/solar-crm/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrComplaintNotFound = errors.New("complaint not found")
)

type ComplaintService struct {
	Repos *repository.Repos
}

func NewComplaintService(repos *repository.Repos) *ComplaintService {
	return &ComplaintService{
		Repos: repos,
	}
}

func (s *ComplaintService) ListComplaints(actor Actor) ([]complaint.Complaint, error) {
	var (
		complaints []complaint.Complaint
		err        error
	)
	if actor.IsAdmin() || actor.IsTechnician() {
		complaints, err = s.Repos.Complaint.ListComplaints()
	} else {
		complaints, err = s.Repos.Complaint.ListComplaintsByCustomer(actor.ID)
	}
	if err != nil {
		return nil, err
	}
	for i := range complaints {
		id := complaints[i].CustomerID
		complaints[i].CustomerName = enrichCustomerName(s.Repos.User, &id, complaints[i].CustomerName)
	}
	return complaints, nil
}

func (s *ComplaintService) FindComplaintByID(actor Actor, id uint) (complaint.Complaint, error) {
	cp, err := s.Repos.Complaint.GetComplaintByID(id)
	if err != nil {
		return complaint.Complaint{}, ErrComplaintNotFound
	}
	if !actor.CanHandle(cp.CustomerID) {
		return complaint.Complaint{}, ErrForbidden
	}
	cid := cp.CustomerID
	cp.CustomerName = enrichCustomerName(s.Repos.User, &cid, cp.CustomerName)
	return cp, nil
}

func (s *ComplaintService) CreateComplaint(actor Actor, input complaint.CreateComplaintInput) (complaint.Complaint, error) {
	customerID := actor.ID
	if actor.IsAdmin() && input.CustomerID != nil {
		customerID = *input.CustomerID
	}
	cp := complaint.Complaint{
		CustomerID:     customerID,
		InstallationID: input.InstallationID,
		Title:          input.Title,
		Description:    input.Description,
		Priority:       string(complaint.PriorityMedium),
		Status:         string(complaint.StatusOpen),
	}
	if input.Priority != nil {
		cp.Priority = *input.Priority
	}
	if u, err := s.Repos.User.GetUserByID(customerID); err == nil {
		cp.CustomerName = u.FullName()
	}
	if err := s.Repos.Complaint.SaveComplaint(&cp); err != nil {
		return complaint.Complaint{}, err
	}
	return cp, nil
}

// UpdateComplaint applies a partial update. The first transition into
// resolved stamps ResolvedAt; repeating resolved on later edits leaves the
// original timestamp in place.
func (s *ComplaintService) UpdateComplaint(actor Actor, id uint, input complaint.UpdateComplaintInput) (complaint.Complaint, error) {
	cp, err := s.Repos.Complaint.GetComplaintByID(id)
	if err != nil {
		return complaint.Complaint{}, ErrComplaintNotFound
	}
	if !actor.CanHandle(cp.CustomerID) {
		return complaint.Complaint{}, ErrForbidden
	}

	if input.Title != nil {
		cp.Title = *input.Title
	}
	if input.Description != nil {
		cp.Description = *input.Description
	}
	if input.Priority != nil {
		cp.Priority = *input.Priority
	}
	if input.Status != nil {
		if *input.Status == string(complaint.StatusResolved) && cp.ResolvedAt == nil {
			now := time.Now()
			cp.ResolvedAt = &now
		}
		cp.Status = *input.Status
	}
	if input.Resolution != nil {
		cp.Resolution = *input.Resolution
	}

	if err := s.Repos.Complaint.SaveComplaint(&cp); err != nil {
		return complaint.Complaint{}, err
	}
	return cp, nil
}

func (s *ComplaintService) RemoveComplaint(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if _, err := s.Repos.Complaint.GetComplaintByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrComplaintNotFound
		}
		return err
	}
	return s.Repos.Complaint.DeleteComplaint(id)
}

// AssignTechnician mirrors the installation rule minus the status side
// effect: complaints keep their status on assignment.
func (s *ComplaintService) AssignTechnician(actor Actor, complaintID, technicianID uint) (complaint.Complaint, error) {
	if !actor.IsAdmin() {
		return complaint.Complaint{}, ErrForbidden
	}

	cp, err := s.Repos.Complaint.GetComplaintByID(complaintID)
	if err != nil {
		return complaint.Complaint{}, ErrComplaintNotFound
	}

	tech, err := s.Repos.Technician.GetTechnicianByID(technicianID)
	if err != nil {
		return complaint.Complaint{}, ErrTechnicianNotFound
	}
	if !tech.Assignable() {
		return complaint.Complaint{}, fmt.Errorf("%w: status is %s", ErrTechnicianUnavailable, tech.Status)
	}

	cp.AssignedTechnicianID = &tech.TechID
	if err := s.Repos.Complaint.SaveComplaint(&cp); err != nil {
		return complaint.Complaint{}, err
	}

	recordAudit(s.Repos, actor.ID, "complaint.assign", "complaint", itoa(cp.ComplaintID),
		nil, map[string]interface{}{"technician_id": tech.TechID}, "")
	return cp, nil
}

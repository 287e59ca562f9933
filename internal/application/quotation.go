package application

import (
	"errors"
	"log"

	"github.com/sunspire/solar-crm/internal/domain/quotation"
	"github.com/sunspire/solar-crm/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrQuotationNotFound = errors.New("quotation not found")
	ErrQuotationDecided  = errors.New("only pending quotations can be approved or rejected")
)

type QuotationService struct {
	Repos *repository.Repos
}

func NewQuotationService(repos *repository.Repos) *QuotationService {
	return &QuotationService{
		Repos: repos,
	}
}

// ListQuotations scopes by actor: admins see all, everyone else their own.
// Customer display names are enriched on the way out.
func (s *QuotationService) ListQuotations(actor Actor) ([]quotation.Quotation, error) {
	var (
		quotes []quotation.Quotation
		err    error
	)
	if actor.IsAdmin() {
		quotes, err = s.Repos.Quotation.ListQuotations()
	} else {
		quotes, err = s.Repos.Quotation.ListQuotationsByCustomer(actor.ID)
	}
	if err != nil {
		return nil, err
	}
	for i := range quotes {
		quotes[i].CustomerName = enrichCustomerName(s.Repos.User, quotes[i].CustomerID, quotes[i].CustomerName)
	}
	return quotes, nil
}

func (s *QuotationService) FindQuotationByID(actor Actor, id uint) (quotation.Quotation, error) {
	q, err := s.Repos.Quotation.GetQuotationByID(id)
	if err != nil {
		return quotation.Quotation{}, ErrQuotationNotFound
	}
	owner := uint(0)
	if q.CustomerID != nil {
		owner = *q.CustomerID
	}
	if !actor.CanTouch(owner) {
		return quotation.Quotation{}, ErrForbidden
	}
	q.CustomerName = enrichCustomerName(s.Repos.User, q.CustomerID, q.CustomerName)
	return q, nil
}

func (s *QuotationService) CreateQuotation(actor Actor, input quotation.CreateQuotationInput) (quotation.Quotation, error) {
	q := quotation.Quotation{
		CustomerID:      input.CustomerID,
		CustomerName:    input.CustomerName,
		PropertyAddress: input.PropertyAddress,
		PropertyType:    input.PropertyType,
		SystemSize:      input.SystemSize,
		EstimatedCost:   input.EstimatedCost,
		Status:          string(quotation.StatusPending),
		Appliances:      toJSONList(input.Appliances),
	}
	if input.Notes != nil {
		q.Notes = *input.Notes
	}
	if input.InstallationTimeline != nil {
		q.InstallationTimeline = *input.InstallationTimeline
	}
	// Customers create quotations for themselves regardless of the payload.
	if !actor.IsAdmin() && actor.ID != 0 {
		q.CustomerID = &actor.ID
	}
	if err := s.Repos.Quotation.SaveQuotation(&q); err != nil {
		return quotation.Quotation{}, err
	}
	return q, nil
}

// UpdateQuotation applies a partial update. When the quotation has already
// been converted, the linked installation is re-synced best-effort: a sync
// failure is logged but does not fail the quotation update.
func (s *QuotationService) UpdateQuotation(actor Actor, id uint, input quotation.UpdateQuotationInput) (quotation.Quotation, error) {
	q, err := s.Repos.Quotation.GetQuotationByID(id)
	if err != nil {
		return quotation.Quotation{}, ErrQuotationNotFound
	}
	owner := uint(0)
	if q.CustomerID != nil {
		owner = *q.CustomerID
	}
	if !actor.CanTouch(owner) {
		return quotation.Quotation{}, ErrForbidden
	}

	if input.CustomerName != nil {
		q.CustomerName = *input.CustomerName
	}
	if input.PropertyAddress != nil {
		q.PropertyAddress = *input.PropertyAddress
	}
	if input.PropertyType != nil {
		q.PropertyType = *input.PropertyType
	}
	if input.SystemSize != nil {
		q.SystemSize = *input.SystemSize
	}
	if input.EstimatedCost != nil {
		q.EstimatedCost = *input.EstimatedCost
	}
	if input.Notes != nil {
		q.Notes = *input.Notes
	}
	if input.InstallationTimeline != nil {
		q.InstallationTimeline = *input.InstallationTimeline
	}
	if input.Appliances != nil {
		q.Appliances = toJSONList(*input.Appliances)
	}

	if err := s.Repos.Quotation.SaveQuotation(&q); err != nil {
		return quotation.Quotation{}, err
	}

	if q.Status == string(quotation.StatusConverted) && actor.IsAdmin() {
		if err := s.syncInstallation(q); err != nil {
			log.Printf("installation re-sync for quotation %d failed: %v", q.QuotationID, err)
		}
	}
	return q, nil
}

// syncInstallation pushes quotation edits onto the derived installation.
// One-way, quotation to installation.
func (s *QuotationService) syncInstallation(q quotation.Quotation) error {
	inst, err := s.Repos.Installation.GetInstallationByQuotationID(q.QuotationID)
	if err != nil {
		return err
	}
	inst.CustomerName = q.CustomerName
	inst.Address = q.PropertyAddress
	inst.Capacity = q.SystemSize
	inst.TotalCost = q.EstimatedCost
	return s.Repos.Installation.SaveInstallation(&inst)
}

// SetStatus handles admin approve/reject. Pending is the only state that can
// be decided; rejected and converted are terminal.
func (s *QuotationService) SetStatus(actor Actor, id uint, status string) (quotation.Quotation, error) {
	if !actor.IsAdmin() {
		return quotation.Quotation{}, ErrForbidden
	}
	q, err := s.Repos.Quotation.GetQuotationByID(id)
	if err != nil {
		return quotation.Quotation{}, ErrQuotationNotFound
	}
	if q.Status != string(quotation.StatusPending) {
		return quotation.Quotation{}, ErrQuotationDecided
	}
	old := q.Status
	q.Status = status
	if err := s.Repos.Quotation.SaveQuotation(&q); err != nil {
		return quotation.Quotation{}, err
	}
	recordAudit(s.Repos, actor.ID, "quotation."+status, "quotation", itoa(q.QuotationID),
		map[string]string{"status": old}, map[string]string{"status": status}, "")
	return q, nil
}

func (s *QuotationService) RemoveQuotation(actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if _, err := s.Repos.Quotation.GetQuotationByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrQuotationNotFound
		}
		return err
	}
	return s.Repos.Quotation.DeleteQuotation(id)
}

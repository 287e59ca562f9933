package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunspire/solar-crm/internal/domain/installation"
	"github.com/sunspire/solar-crm/internal/domain/quotation"
	"github.com/sunspire/solar-crm/internal/domain/technician"
)

func TestQuotationToInstallationFlow(t *testing.T) {
	adminToken := loginAsAdmin(t)
	customerID, customerToken := registerAndLogin(t, uniqueEmail("customer"))

	// Customer requests a quote.
	w := doRequest(t, http.MethodPost, "/api/quotations", customerToken, map[string]interface{}{
		"customer_name":    fmt.Sprintf("%d", customerID),
		"property_address": "12 MG Road, Pune",
		"property_type":    "residential",
		"system_size":      5.5,
		"estimated_cost":   302500,
	}, http.StatusCreated)

	var quote quotation.Quotation
	decode(t, w, &quote)
	require.NotZero(t, quote.QuotationID)
	assert.Equal(t, string(quotation.StatusPending), quote.Status)
	require.NotNil(t, quote.CustomerID)
	assert.Equal(t, customerID, *quote.CustomerID)

	// Customers cannot decide quotations.
	doRequest(t, http.MethodPut, fmt.Sprintf("/api/quotations/%d/status", quote.QuotationID),
		customerToken, map[string]string{"status": "approved"}, http.StatusForbidden)

	// Admin approves.
	w = doRequest(t, http.MethodPut, fmt.Sprintf("/api/quotations/%d/status", quote.QuotationID),
		adminToken, map[string]string{"status": "approved"}, http.StatusOK)
	decode(t, w, &quote)
	assert.Equal(t, string(quotation.StatusApproved), quote.Status)

	// Conversion is admin-only.
	doRequest(t, http.MethodPost, "/api/installations/from-quotation", customerToken,
		map[string]uint{"quotation_id": quote.QuotationID}, http.StatusForbidden)

	w = doRequest(t, http.MethodPost, "/api/installations/from-quotation", adminToken,
		map[string]uint{"quotation_id": quote.QuotationID}, http.StatusCreated)

	var inst installation.Installation
	decode(t, w, &inst)
	require.NotZero(t, inst.InstallationID)
	assert.Equal(t, customerID, inst.CustomerID)
	assert.Equal(t, string(installation.StatusPending), inst.Status)
	assert.Equal(t, quote.SystemSize, inst.Capacity)
	assert.Equal(t, quote.EstimatedCost, inst.TotalCost)
	require.NotNil(t, inst.QuotationID)
	assert.Equal(t, quote.QuotationID, *inst.QuotationID)

	// The quotation is now terminal.
	w = doRequest(t, http.MethodGet, fmt.Sprintf("/api/quotations/%d", quote.QuotationID),
		adminToken, nil, http.StatusOK)
	decode(t, w, &quote)
	assert.Equal(t, string(quotation.StatusConverted), quote.Status)

	// A second conversion of the same quotation is rejected.
	doRequest(t, http.MethodPost, "/api/installations/from-quotation", adminToken,
		map[string]uint{"quotation_id": quote.QuotationID}, http.StatusBadRequest)

	// Assigning an active technician moves a pending installation forward.
	w = doRequest(t, http.MethodPost, "/api/technicians", adminToken, map[string]interface{}{
		"name":             "Tariq Khan",
		"specializations":  []string{"rooftop"},
		"experience_years": 4,
	}, http.StatusCreated)

	var tech technician.Technician
	decode(t, w, &tech)
	require.NotZero(t, tech.TechID)

	w = doRequest(t, http.MethodPut,
		fmt.Sprintf("/api/installations/%d/assign-technician", inst.InstallationID),
		adminToken, map[string]uint{"technician_id": tech.TechID}, http.StatusOK)
	decode(t, w, &inst)
	assert.Equal(t, string(installation.StatusInProgress), inst.Status)
	require.NotNil(t, inst.TechnicianID)
	assert.Equal(t, tech.TechID, *inst.TechnicianID)

	// The customer sees their own installation with a readable name.
	w = doRequest(t, http.MethodGet, fmt.Sprintf("/api/installations/%d", inst.InstallationID),
		customerToken, nil, http.StatusOK)
	decode(t, w, &inst)
	assert.Equal(t, "Test User", inst.CustomerName)
}

func TestRejectedQuotationCannotConvert(t *testing.T) {
	adminToken := loginAsAdmin(t)
	_, customerToken := registerAndLogin(t, uniqueEmail("customer"))

	w := doRequest(t, http.MethodPost, "/api/quotations", customerToken, map[string]interface{}{
		"customer_name":    "Rao Residence",
		"property_address": "4 Lake View, Pune",
		"system_size":      3.3,
		"estimated_cost":   181500,
	}, http.StatusCreated)

	var quote quotation.Quotation
	decode(t, w, &quote)

	doRequest(t, http.MethodPut, fmt.Sprintf("/api/quotations/%d/status", quote.QuotationID),
		adminToken, map[string]string{"status": "rejected"}, http.StatusOK)

	doRequest(t, http.MethodPost, "/api/installations/from-quotation", adminToken,
		map[string]uint{"quotation_id": quote.QuotationID}, http.StatusBadRequest)

	// A decided quotation cannot be re-decided.
	doRequest(t, http.MethodPut, fmt.Sprintf("/api/quotations/%d/status", quote.QuotationID),
		adminToken, map[string]string{"status": "approved"}, http.StatusBadRequest)
}

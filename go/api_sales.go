package storemanagerserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	salemapper "github.com/Apurer/store-manager/internal/domains/sales/adapters/http/mapper"
	saledomain "github.com/Apurer/store-manager/internal/domains/sales/domain"
	saleports "github.com/Apurer/store-manager/internal/domains/sales/ports"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

// SaleAPI wires HTTP transport with the sales bounded context service and registrar.
type SaleAPI struct {
	service   saleports.Service
	registrar saleports.SaleRegistrar
}

// NewSaleAPI creates a SaleAPI. A nil registrar sends registrations straight to the service.
func NewSaleAPI(service saleports.Service, registrar saleports.SaleRegistrar) SaleAPI {
	return SaleAPI{service: service, registrar: registrar}
}

// Get /sales
// Lists every line item of every sale
func (api *SaleAPI) ListSales(c *gin.Context) {
	rows, err := api.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, salemapper.FromDomainListing(rows))
}

// Get /sales/:id
// Returns the line items of one sale
func (api *SaleAPI) GetSaleById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rows, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, salemapper.FromDomainDetail(rows))
}

// Post /sales
// Registers a sale with its line items
func (api *SaleAPI) AddSale(c *gin.Context) {
	items, ok := bindSaleItems(c)
	if !ok {
		return
	}
	registration, err := api.registerSale(c.Request.Context(), items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, salemapper.FromDomainRegistration(registration))
}

func (api *SaleAPI) registerSale(ctx context.Context, items []saledomain.ItemInput) (*saledomain.Registration, error) {
	if api.registrar != nil {
		return api.registrar.RegisterSale(ctx, items)
	}
	return api.service.Add(ctx, items)
}

// Put /sales/:id
// Updates line item quantities of a sale
func (api *SaleAPI) UpdateSale(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	items, ok := bindSaleItems(c)
	if !ok {
		return
	}
	update, err := api.service.Edit(c.Request.Context(), id, items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, salemapper.FromDomainUpdate(update))
}

// Delete /sales/:id
// Deletes a sale and its line items
func (api *SaleAPI) DeleteSale(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Remove(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindSaleItems(c *gin.Context) ([]saledomain.ItemInput, bool) {
	var payload []salemapper.MutationItem
	if !bindJSON(c, &payload) {
		return nil, false
	}
	// A null body decodes to a nil slice; only an explicit array is a sale.
	if payload == nil {
		respondValidation(c, apierrors.BadRequest(invalidJSONMessage))
		return nil, false
	}
	if verr := ValidateSaleItems(payload); verr != nil {
		respondValidation(c, verr)
		return nil, false
	}
	return salemapper.ToDomainItems(payload), true
}

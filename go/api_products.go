package storemanagerserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	productmapper "github.com/Apurer/store-manager/internal/domains/products/adapters/http/mapper"
	productports "github.com/Apurer/store-manager/internal/domains/products/ports"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

// ProductAPI wires HTTP transport with the products bounded context service.
type ProductAPI struct {
	service productports.Service
}

// NewProductAPI creates a ProductAPI backed by the provided service.
func NewProductAPI(service productports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// Get /products
// Lists every product
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainProducts(products))
}

// Get /products/search
// Finds products whose name contains q, ignoring case
func (api *ProductAPI) SearchProducts(c *gin.Context) {
	var term string
	if err := runtime.BindQueryParameter("form", true, false, "q", c.Request.URL.Query(), &term); err != nil {
		respondValidation(c, apierrors.BadRequest("Invalid format for parameter q: "+err.Error()))
		return
	}
	products, err := api.service.SearchByName(c.Request.Context(), term)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainProducts(products))
}

// Get /products/:id
// Finds a product by id
func (api *ProductAPI) GetProductById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainProduct(product))
}

// Post /products
// Adds a product
func (api *ProductAPI) AddProduct(c *gin.Context) {
	var payload productmapper.MutationProduct
	if !bindJSON(c, &payload) {
		return
	}
	if verr := ValidateProduct(payload); verr != nil {
		respondValidation(c, verr)
		return
	}
	product, err := api.service.Add(c.Request.Context(), payload.NameValue())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, productmapper.FromDomainProduct(product))
}

// Put /products/:id
// Renames an existing product
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload productmapper.MutationProduct
	if !bindJSON(c, &payload) {
		return
	}
	if verr := ValidateProduct(payload); verr != nil {
		respondValidation(c, verr)
		return
	}
	product, err := api.service.Edit(c.Request.Context(), id, payload.NameValue())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, productmapper.FromDomainProduct(product))
}

// Delete /products/:id
// Deletes a product
func (api *ProductAPI) DeleteProduct(c *gin.Context) {
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

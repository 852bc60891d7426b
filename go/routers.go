// Package storemanagerserver is the gin transport of the store manager API:
// route table, handlers, and request validators.
package storemanagerserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handlers of every resource.
type ApiHandleFunctions struct {
	ProductAPI ProductAPI
	SaleAPI    SaleAPI
}

// NewRouter returns a new router with default middleware.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers every route on a preconfigured engine.
// Middleware must be attached to router before calling it.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	return router
}

// DefaultHandleFunc answers routes without a handler.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// Healthz reports liveness.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// /products/search is registered before /products/:id so "search" is never
// read as an id.
func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"Healthz",
			http.MethodGet,
			"/healthz",
			Healthz,
		},
		{
			"ListProducts",
			http.MethodGet,
			"/products",
			handleFunctions.ProductAPI.ListProducts,
		},
		{
			"SearchProducts",
			http.MethodGet,
			"/products/search",
			handleFunctions.ProductAPI.SearchProducts,
		},
		{
			"GetProductById",
			http.MethodGet,
			"/products/:id",
			handleFunctions.ProductAPI.GetProductById,
		},
		{
			"AddProduct",
			http.MethodPost,
			"/products",
			handleFunctions.ProductAPI.AddProduct,
		},
		{
			"UpdateProduct",
			http.MethodPut,
			"/products/:id",
			handleFunctions.ProductAPI.UpdateProduct,
		},
		{
			"DeleteProduct",
			http.MethodDelete,
			"/products/:id",
			handleFunctions.ProductAPI.DeleteProduct,
		},
		{
			"ListSales",
			http.MethodGet,
			"/sales",
			handleFunctions.SaleAPI.ListSales,
		},
		{
			"GetSaleById",
			http.MethodGet,
			"/sales/:id",
			handleFunctions.SaleAPI.GetSaleById,
		},
		{
			"AddSale",
			http.MethodPost,
			"/sales",
			handleFunctions.SaleAPI.AddSale,
		},
		{
			"UpdateSale",
			http.MethodPut,
			"/sales/:id",
			handleFunctions.SaleAPI.UpdateSale,
		},
		{
			"DeleteSale",
			http.MethodDelete,
			"/sales/:id",
			handleFunctions.SaleAPI.DeleteSale,
		},
	}
}

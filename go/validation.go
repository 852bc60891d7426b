package storemanagerserver

import (
	"unicode/utf8"

	productmapper "github.com/Apurer/store-manager/internal/domains/products/adapters/http/mapper"
	productdomain "github.com/Apurer/store-manager/internal/domains/products/domain"
	salemapper "github.com/Apurer/store-manager/internal/domains/sales/adapters/http/mapper"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

const (
	msgNameRequired     = `"name" is required`
	msgNameTooShort     = `"name" length must be at least 5 characters long`
	msgQuantityRequired = `"quantity" is required`
	msgQuantityTooLow   = `"quantity" must be greater than or equal to 1`
	msgProductIDMissing = `"productId" is required`
)

// ValidateProduct checks a product payload. It performs no I/O.
func ValidateProduct(payload productmapper.MutationProduct) *apierrors.Error {
	name := payload.NameValue()
	if name == "" {
		return apierrors.BadRequest(msgNameRequired)
	}
	if utf8.RuneCountInString(name) < productdomain.MinNameLength {
		return apierrors.UnprocessableEntity(msgNameTooShort)
	}
	return nil
}

// ValidateSaleItem checks one requested line item. Quantity is checked before productId.
func ValidateSaleItem(item salemapper.MutationItem) *apierrors.Error {
	if item.Quantity == nil {
		return apierrors.BadRequest(msgQuantityRequired)
	}
	if *item.Quantity < 1 {
		return apierrors.UnprocessableEntity(msgQuantityTooLow)
	}
	if item.ProductID == nil || *item.ProductID == 0 {
		return apierrors.BadRequest(msgProductIDMissing)
	}
	return nil
}

// ValidateSaleItems checks items in order and returns the first failure.
func ValidateSaleItems(items []salemapper.MutationItem) *apierrors.Error {
	for _, item := range items {
		if err := ValidateSaleItem(item); err != nil {
			return err
		}
	}
	return nil
}

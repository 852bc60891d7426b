package application

import (
	"errors"

	"github.com/Apurer/store-manager/internal/domains/sales/ports"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrNotFound) {
		return apierrors.ErrSaleNotFound
	}
	return err
}

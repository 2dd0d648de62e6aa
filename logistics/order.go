// SPDX-License-Identifier: MIT

package logistics

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidOrder is returned when an Order fails field validation.
var ErrInvalidOrder = errors.New("logistics: invalid order")

// orderValidate is shared; validator caches struct metadata per type.
var orderValidate = validator.New()

// Order is one customer parcel record.
type Order struct {
	OrderID      string `json:"order_id" validate:"required,max=64"`
	CustomerName string `json:"customer_name" validate:"required,max=128"`
	City         string `json:"city" validate:"required,max=64"`
	State        string `json:"state" validate:"omitempty,max=64"`
	Product      string `json:"product" validate:"omitempty,max=256"`
}

// Validate checks required fields and lengths.
func (o Order) Validate() error {
	if err := orderValidate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalidOrder, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}

	return nil
}

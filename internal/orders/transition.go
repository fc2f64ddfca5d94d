package orders

import (
	"github.com/vogant/storefront-backend/pkg/enums"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
)

// Transition resolves a requested order-status change. Any enumerated
// status is reachable from any other, including backward moves and moves
// out of Delivered or Cancelled; the back office relies on that freedom
// to correct mis-set orders, so no forward-only enforcement is applied
// here. Only the order status is involved; payment status is independent
// and never implied.
func Transition(current enums.OrderStatus, requested string) (enums.OrderStatus, error) {
	next, err := enums.ParseOrderStatus(requested)
	if err != nil {
		return "", pkgerrors.Newf(pkgerrors.CodeValidation, "invalid order status %q", requested)
	}
	if next == current {
		return current, nil
	}
	return next, nil
}

package orders

import (
	"testing"

	"github.com/vogant/storefront-backend/pkg/enums"
	pkgerrors "github.com/vogant/storefront-backend/pkg/errors"
)

func TestTransitionAllowsAnyEnumeratedTarget(t *testing.T) {
	cases := []struct {
		name      string
		current   enums.OrderStatus
		requested string
		want      enums.OrderStatus
	}{
		{name: "forward skip", current: enums.OrderStatusPending, requested: "Delivered", want: enums.OrderStatusDelivered},
		{name: "backward out of terminal", current: enums.OrderStatusDelivered, requested: "Pending", want: enums.OrderStatusPending},
		{name: "cancel from shipped", current: enums.OrderStatusShipped, requested: "Cancelled", want: enums.OrderStatusCancelled},
		{name: "out of cancelled", current: enums.OrderStatusCancelled, requested: "Packed", want: enums.OrderStatusPacked},
		{name: "no-op", current: enums.OrderStatusPacked, requested: "Packed", want: enums.OrderStatusPacked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Transition(tc.current, tc.requested)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("transition(%s, %s) = %s, want %s", tc.current, tc.requested, got, tc.want)
			}
		})
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	for _, requested := range []string{"", "Returned", "pending", "DELIVERED"} {
		_, err := Transition(enums.OrderStatusPending, requested)
		if err == nil {
			t.Fatalf("expected error for %q", requested)
		}
		appErr := pkgerrors.As(err)
		if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for %q, got %v", requested, err)
		}
	}
}

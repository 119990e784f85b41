package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/lesson-seat-storefront/internal/model"
	"github.com/iliyamo/lesson-seat-storefront/internal/service"
	"github.com/iliyamo/lesson-seat-storefront/internal/store"
)

// CheckoutHandler serves the checkout endpoint on behalf of the
// coordinator.  The handler stores the submitted contact details on the
// session, mirroring a form that stays filled in when validation fails,
// and leaves all transaction semantics to the coordinator.
type CheckoutHandler struct {
	Session  *store.Session    // session holding cart and customer
	Checkout *service.Checkout // transaction coordinator
}

// NewCheckoutHandler constructs a CheckoutHandler and panics if any
// dependency is nil.
func NewCheckoutHandler(session *store.Session, checkout *service.Checkout) *CheckoutHandler {
	if session == nil || checkout == nil {
		panic("nil dependency passed to NewCheckoutHandler")
	}
	return &CheckoutHandler{Session: session, Checkout: checkout}
}

// PostCheckout handles POST /v1/checkout.  The request body carries
// the customer {"name", "phone"}.  A failed validation gate returns
// 422 with no side effects; a rejected or unreachable order submission
// returns 502 with cart and catalog untouched.  On success the cart
// and customer are cleared, the catalog refreshed, and 201 returned
// with the confirmation message and the count of seat-sync failures.
func (h *CheckoutHandler) PostCheckout(c echo.Context) error {
	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	h.Session.SetCustomer(model.Customer{Name: body.Name, Phone: body.Phone})

	result, err := h.Checkout.Run(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrCheckoutNotReady) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"error": "name must be letters and spaces, phone must be digits, and the cart must not be empty",
			})
		}
		c.Logger().Errorf("checkout failed: %v", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "order submission failed"})
	}

	return c.JSON(http.StatusCreated, result)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/lesson-seat-storefront/internal/model"
	"github.com/iliyamo/lesson-seat-storefront/internal/queue"
	"github.com/iliyamo/lesson-seat-storefront/internal/repository"
	"github.com/iliyamo/lesson-seat-storefront/internal/store"
)

// ErrCheckoutNotReady is returned when the validation gate fails: the
// customer name or phone does not match the required pattern, or the
// cart is empty.  Checkout is a no-op in that case.  Handlers should
// translate this into an HTTP 422 response.
var ErrCheckoutNotReady = errors.New("checkout not ready")

// defaultConfirmation is shown when the order acknowledgement carries
// no message of its own.
const defaultConfirmation = "Order submitted"

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z ]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]+$`)
)

// IsCheckoutValid reports whether a checkout may proceed: the name is
// one or more letters and spaces, the phone one or more digits, and the
// cart holds at least one seat.
func IsCheckoutValid(c model.Customer, seats int) bool {
	return nameRe.MatchString(c.Name) && phoneRe.MatchString(c.Phone) && seats > 0
}

// CheckoutResult reports the outcome of an accepted checkout.
// SyncFailures counts per-line seat updates the remote store did not
// acknowledge; a non-zero value means remote inventory may be
// inconsistent with what was sold and the catalog refresh is the only
// thing that re-established local ground truth.
type CheckoutResult struct {
	Reference    string `json:"reference"`
	Message      string `json:"message"`
	SyncFailures int    `json:"sync_failures"`
}

// Checkout runs the checkout transaction for one session.  The order
// submission is the single all-or-nothing point: everything before it
// leaves no trace on failure, everything after it is deliberately not
// rolled back.
type Checkout struct {
	session *store.Session
	lessons *repository.LessonRepo
	timeout time.Duration
	publish bool
}

// NewCheckout constructs a Checkout coordinator and panics if any
// dependency is nil.  Each remote call made during checkout is bounded
// by the given timeout.  When publish is true, an order.placed event is
// sent to the broker after a successful checkout.
func NewCheckout(session *store.Session, lessons *repository.LessonRepo, timeout time.Duration, publish bool) *Checkout {
	if session == nil || lessons == nil {
		panic("nil dependency passed to NewCheckout")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Checkout{session: session, lessons: lessons, timeout: timeout, publish: publish}
}

// Run executes the checkout protocol:
//
//  1. Validate the stored customer and the cart; fail with
//     ErrCheckoutNotReady and no side effects if the gate does not hold.
//  2. Submit the order built from the grouped cart view.  Any failure
//     here aborts the whole checkout with cart and catalog untouched.
//  3. On acceptance, push the current local seat count for every
//     grouped line to the remote store, one concurrent call per line.
//     Individual failures are logged and counted, never rolled back,
//     and do not abort the other calls.
//  4. After all updates settle, clear the cart and the customer and
//     re-fetch the catalog wholesale.  The refresh is the sole
//     resynchronization mechanism; local mutations are never trusted
//     as final truth.
func (c *Checkout) Run(ctx context.Context) (CheckoutResult, error) {
	cust := c.session.Customer()
	if !IsCheckoutValid(cust, c.session.Count()) {
		return CheckoutResult{}, ErrCheckoutNotReady
	}

	grouped := c.session.Grouped()
	items := make([]model.OrderItem, len(grouped))
	for i, g := range grouped {
		items[i] = model.OrderItem{Subject: g.Subject, City: g.City, Price: g.Price, Quantity: g.Quantity}
	}
	order := model.Order{
		Reference: uuid.NewString(),
		Name:      strings.TrimSpace(cust.Name),
		Phone:     strings.TrimSpace(cust.Phone),
		Items:     items,
		Total:     c.session.Total(),
	}

	subCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	message, err := c.lessons.SubmitOrder(subCtx, order)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("checkout: %w", err)
	}

	// The order is accepted; push the local seat counts for the sold
	// offerings.  Absolute values keep the updates idempotent.
	var wg sync.WaitGroup
	var failures atomic.Int32
	for _, g := range grouped {
		spaces, ok := c.session.SpacesFor(g.Subject, g.City)
		if !ok {
			log.Printf("checkout: offering %s/%s vanished from catalog, skipping sync", g.Subject, g.City)
			failures.Add(1)
			continue
		}
		wg.Add(1)
		go func(subject, city string, spaces int) {
			defer wg.Done()
			updCtx, cancelUpd := context.WithTimeout(ctx, c.timeout)
			defer cancelUpd()
			if err := c.lessons.UpdateSpaces(updCtx, subject, city, spaces); err != nil {
				log.Printf("checkout: seat sync failed for %s/%s: %v", subject, city, err)
				failures.Add(1)
			}
		}(g.Subject, g.City, spaces)
	}
	wg.Wait()

	seats := c.session.Count()
	c.session.ClearCart()
	c.session.ClearCustomer()

	refCtx, cancelRef := context.WithTimeout(ctx, c.timeout)
	defer cancelRef()
	if subjects, err := c.lessons.FetchLessons(refCtx); err != nil {
		// The confirmation still stands; the catalog stays stale until
		// the next successful fetch.
		log.Printf("checkout: catalog refresh failed: %v", err)
	} else {
		c.session.ReplaceCatalog(subjects)
	}

	if message == "" {
		message = defaultConfirmation
	}
	result := CheckoutResult{
		Reference:    order.Reference,
		Message:      message,
		SyncFailures: int(failures.Load()),
	}

	if c.publish {
		go c.publishOrderPlaced(order, seats, result.SyncFailures)
	}
	return result, nil
}

// publishOrderPlaced emits the order.placed event fire-and-forget; a
// failed publish is logged inside PublishOrderPlaced and dropped.
func (c *Checkout) publishOrderPlaced(order model.Order, seats, syncFailures int) {
	lessons := make([]string, len(order.Items))
	for i, it := range order.Items {
		lessons[i] = fmt.Sprintf("%s (%s) x%d", it.Subject, it.City, it.Quantity)
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	_ = PublishOrderPlaced(ctx, queue.OrderPlacedEvent{
		Reference:    order.Reference,
		Name:         order.Name,
		Lessons:      lessons,
		TotalSeats:   seats,
		Total:        order.Total.String(),
		SyncFailures: syncFailures,
		PlacedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}

// Package checkout drives the order confirmation flow: preconditions,
// customer validation, cart snapshot, order-id allocation and the WhatsApp
// handoff link.
package checkout

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/sivanaveen080/biryani-for-lunch/internal/cart"
	"github.com/sivanaveen080/biryani-for-lunch/internal/orderwindow"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/logger"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/metrics"
)

// State names the orchestrator's position in the confirmation flow.
type State string

const (
	StateIdle                 State = "idle"
	StateValidating           State = "validating"
	StateSubmittingRemote     State = "submitting_remote"
	StateAwaitingConfirmation State = "awaiting_confirmation"
)

// Allocator assigns the order identifier for a submission. The remote
// variant asks the order sheet; the local variant owns a persisted counter.
type Allocator interface {
	AllocateOrderID(ctx context.Context, sub Submission) (int64, error)
}

// LinkComposer renders the confirmation deep link for a submitted order.
type LinkComposer interface {
	Compose(orderID int64, sub Submission) string
}

// Input carries the customer fields entered in the checkout prompt.
type Input struct {
	CustomerName   string `json:"customer_name" validate:"required"`
	CustomerMobile string `json:"customer_mobile" validate:"required"`
}

// Result is returned once an order id is assigned and the handoff link is
// composed. The cart is already cleared by the time callers see it.
type Result struct {
	OrderID    int64      `json:"order_id"`
	WALink     string     `json:"wa_link"`
	Submission Submission `json:"submission"`
}

var mobilePattern = regexp.MustCompile(`^[1-9]\d{9}$`)

// Service is the checkout orchestrator. One confirmation may be in flight
// per session; triggers received while busy are dropped.
type Service struct {
	gate      orderwindow.Gate
	allocator Allocator
	links     LinkComposer
	checkout  *metrics.CheckoutMetrics
	logg      *logger.Logger
	now       func() time.Time

	mu     sync.Mutex
	states map[string]State
}

// ServiceParams collects the orchestrator's dependencies.
type ServiceParams struct {
	Gate      orderwindow.Gate
	Allocator Allocator
	Links     LinkComposer
	Metrics   *metrics.CheckoutMetrics
	Logger    *logger.Logger
	Now       func() time.Time
}

// NewService validates and wires the orchestrator.
func NewService(params ServiceParams) (*Service, error) {
	if params.Gate == nil {
		return nil, fmt.Errorf("order window gate required")
	}
	if params.Allocator == nil {
		return nil, fmt.Errorf("order id allocator required")
	}
	if params.Links == nil {
		return nil, fmt.Errorf("link composer required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		gate:      params.Gate,
		allocator: params.Allocator,
		links:     params.Links,
		checkout:  params.Metrics,
		logg:      params.Logger,
		now:       now,
		states:    make(map[string]State),
	}, nil
}

// State reports the session's current position in the flow.
func (s *Service) State(sessionID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[sessionID]; ok {
		return st
	}
	return StateIdle
}

// Confirm runs the checkout sequence for one session. Every exit path
// returns the session to Idle; on remote failure the cart is left intact so
// the customer does not re-enter items.
func (s *Service) Confirm(ctx context.Context, sessionID string, store *cart.Store, input Input) (*Result, error) {
	if !s.begin(sessionID) {
		s.checkout.IncFailure("busy")
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "an order is already being placed")
	}
	defer s.release(sessionID)

	if store.Empty() {
		s.checkout.IncFailure("empty_cart")
		return nil, pkgerrors.New(pkgerrors.CodePrecondition, "cart is empty")
	}
	if err := s.gate.Admit(s.now()); err != nil {
		s.checkout.IncFailure("window_closed")
		return nil, err
	}

	name := strings.TrimSpace(input.CustomerName)
	mobile := strings.TrimSpace(input.CustomerMobile)
	if name == "" {
		s.checkout.IncFailure("validation")
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "please enter your name")
	}
	if !mobilePattern.MatchString(mobile) {
		s.checkout.IncFailure("validation")
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			"enter a valid 10-digit mobile number (cannot start with 0)")
	}

	sub := snapshot(name, mobile, store)

	s.transition(sessionID, StateSubmittingRemote)
	started := s.now()
	orderID, err := s.allocator.AllocateOrderID(ctx, sub)
	s.checkout.ObserveAllocation(s.now().Sub(started))
	if err != nil {
		s.checkout.IncFailure("allocation")
		if s.logg != nil {
			s.logg.Error(ctx, "checkout.allocation_failed", err)
		}
		return nil, err
	}

	s.transition(sessionID, StateAwaitingConfirmation)
	link := s.links.Compose(orderID, sub)

	store.Clear()
	s.checkout.IncPlaced()
	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderID(ctx, orderID), "checkout.order_placed")
	}

	return &Result{OrderID: orderID, WALink: link, Submission: sub}, nil
}

func (s *Service) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[sessionID]; ok && st != StateIdle {
		return false
	}
	s.states[sessionID] = StateValidating
	return true
}

func (s *Service) transition(sessionID string, next State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sessionID] = next
}

func (s *Service) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}

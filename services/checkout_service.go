package services

import (
	"context"
	"errors"
	"log"
	"nutcha-shop/models"
	"nutcha-shop/repositories"
	"strings"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrWrongStep is returned when a step submission arrives out of order, e.g.
// a shipping form while the flow still sits on billing.
var ErrWrongStep = errors.New("checkout step out of order")

// OrderMailer sends the confirmation email after placement. Implemented by
// models.EmailService; nil disables mailing.
type OrderMailer interface {
	SendOrderConfirmationEmail(to string, order *models.Order) error
}

// CheckoutService drives the linear Billing -> Shipping -> Payment -> Review
// flow. Forward transitions are gated on step-local validation; Back is always
// permitted. PlaceOrder is available only from Review and freezes the live
// pricing projection into an immutable Order.
type CheckoutService struct {
	carts    *CartService
	drafts   repositories.CheckoutRepository
	current  repositories.CurrentOrderRepository
	history  repositories.OrderHistoryRepository
	gateway  *PaymentGateway
	mailer   OrderMailer
	validate *validatorv10.Validate

	nowFunc        func() time.Time
	newOrderNumber func() string
}

func NewCheckoutService(
	carts *CartService,
	drafts repositories.CheckoutRepository,
	current repositories.CurrentOrderRepository,
	history repositories.OrderHistoryRepository,
	gateway *PaymentGateway,
	mailer OrderMailer,
) *CheckoutService {
	return &CheckoutService{
		carts:          carts,
		drafts:         drafts,
		current:        current,
		history:        history,
		gateway:        gateway,
		mailer:         mailer,
		validate:       newCheckoutValidator(),
		nowFunc:        time.Now,
		newOrderNumber: generateOrderNumber,
	}
}

// State reports the current step, the accepted forms and the live pricing for
// the session.
func (s *CheckoutService) State(ctx context.Context, sessionID string) (*models.CheckoutView, error) {
	draft, err := s.drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	lines, err := s.carts.GetLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &models.CheckoutView{
		Step:    draft.Step,
		Draft:   *draft,
		Pricing: ComputePricing(lines, draft.DiscountRate),
	}, nil
}

// SubmitBilling validates the billing form and, on success, advances the flow
// to shipping. A non-nil map means validation failed and the flow did not move.
func (s *CheckoutService) SubmitBilling(ctx context.Context, sessionID string, form models.BillingDetails) (map[string]string, error) {
	draft, err := s.drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepBilling {
		return nil, ErrWrongStep
	}

	trimBilling(&form)
	if err := s.validate.Struct(form); err != nil {
		return fieldErrors(err), nil
	}

	draft.Billing = form
	draft.Step = models.StepShipping
	return nil, s.drafts.SaveDraft(ctx, sessionID, draft)
}

func (s *CheckoutService) SubmitShipping(ctx context.Context, sessionID string, form models.ShippingDetails) (map[string]string, error) {
	draft, err := s.drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepShipping {
		return nil, ErrWrongStep
	}

	trimShipping(&form)
	if err := s.validate.Struct(form); err != nil {
		return fieldErrors(err), nil
	}

	draft.Shipping = form
	draft.Step = models.StepPayment
	return nil, s.drafts.SaveDraft(ctx, sessionID, draft)
}

// SubmitPayment validates the payment form, cross-checks the cardholder name
// against the billing full name, then runs the single-attempt charge
// simulation. A declined charge surfaces as ErrPaymentDeclined with no
// automatic retry. On success only the masked card is retained on the draft.
func (s *CheckoutService) SubmitPayment(ctx context.Context, sessionID string, form models.PaymentDetails) (map[string]string, error) {
	draft, err := s.drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepPayment {
		return nil, ErrWrongStep
	}

	trimPayment(&form)
	errs := map[string]string{}
	if err := s.validate.Struct(form); err != nil {
		errs = fieldErrors(err)
	}
	if _, present := errs["name_on_card"]; !present &&
		!strings.EqualFold(form.NameOnCard, strings.TrimSpace(draft.Billing.FullName)) {
		errs["name_on_card"] = "Name on card must match the billing full name"
	}
	if len(errs) > 0 {
		return errs, nil
	}

	lines, err := s.carts.GetLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	pricing := ComputePricing(lines, draft.DiscountRate)

	if err := s.gateway.Charge(ctx, pricing.Total); err != nil {
		return nil, err
	}

	draft.CardLast4 = form.CardNumber[len(form.CardNumber)-4:]
	draft.NameOnCard = form.NameOnCard
	draft.Step = models.StepReview
	return nil, s.drafts.SaveDraft(ctx, sessionID, draft)
}

// Back steps the flow one position toward billing. It is unconditional; from
// billing it stays put.
func (s *CheckoutService) Back(ctx context.Context, sessionID string) (*models.CheckoutDraft, error) {
	draft, err := s.drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft.Step = prevStep(draft.Step)
	if err := s.drafts.SaveDraft(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ApplyCoupon resolves the code to a discount rate. A recognized code is
// stored on the draft; an unrecognized one changes nothing and reports false.
func (s *CheckoutService) ApplyCoupon(ctx context.Context, sessionID, code string) (float64, bool, error) {
	rate := CouponRate(code)
	if rate == 0 {
		return 0, false, nil
	}

	draft, err := s.drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return 0, false, err
	}
	draft.CouponCode = strings.ToLower(strings.TrimSpace(code))
	draft.DiscountRate = rate
	if err := s.drafts.SaveDraft(ctx, sessionID, draft); err != nil {
		return 0, false, err
	}
	return rate, true, nil
}

// PlaceOrder freezes the active lines and pricing as of this call into an
// immutable Order, persists it, clears the cart and the checkout draft, and
// hands the order back for the confirmation view. An empty cart is not
// rejected. Only permitted from Review.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string) (*models.Order, error) {
	draft, err := s.drafts.LoadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepReview {
		return nil, ErrWrongStep
	}

	lines, err := s.carts.GetLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.nowFunc()
	order := &models.Order{
		OrderNumber:       s.newOrderNumber(),
		Lines:             ActiveLines(lines),
		Billing:           draft.Billing,
		Shipping:          draft.Shipping,
		Pricing:           ComputePricing(lines, draft.DiscountRate),
		EstimatedDelivery: now.AddDate(0, 0, 5).Format("Monday, January 2, 2006"),
		PlacedAt:          now,
	}

	if err := s.current.SaveCurrent(ctx, sessionID, order); err != nil {
		return nil, err
	}
	if s.history != nil {
		if err := s.history.Insert(ctx, sessionID, order); err != nil {
			log.Printf("order history insert failed: %v", err)
		}
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	if err := s.drafts.DeleteDraft(ctx, sessionID); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmationEmail(order.Billing.Email, order); err != nil {
			log.Printf("order confirmation email failed: %v", err)
		}
	}

	return order, nil
}

// CurrentOrder returns the session's most recently placed order, or nil when
// none is stored.
func (s *CheckoutService) CurrentOrder(ctx context.Context, sessionID string) (*models.Order, error) {
	return s.current.LoadCurrent(ctx, sessionID)
}

// ContinueShopping removes the stored order record when the visitor leaves
// the confirmation view.
func (s *CheckoutService) ContinueShopping(ctx context.Context, sessionID string) error {
	return s.current.DeleteCurrent(ctx, sessionID)
}

func prevStep(step models.CheckoutStep) models.CheckoutStep {
	switch step {
	case models.StepReview:
		return models.StepPayment
	case models.StepPayment:
		return models.StepShipping
	case models.StepShipping:
		return models.StepBilling
	}
	return models.StepBilling
}

func generateOrderNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "NB-" + strings.ToUpper(raw[:10])
}

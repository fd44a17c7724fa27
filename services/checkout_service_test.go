package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"nutcha-shop/models"
)

func newTestCheckout(t *testing.T) (*CheckoutService, *CartService) {
	t.Helper()

	carts := NewCartService(newMemCartRepo())
	gateway := NewPaymentGateway()
	gateway.sleep = noSleep
	gateway.randFloat = alwaysApprove

	svc := NewCheckoutService(carts, newMemCheckoutRepo(), newMemCurrentOrderRepo(), &memHistoryRepo{}, gateway, nil)
	svc.nowFunc = func() time.Time {
		return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	svc.newOrderNumber = func() string { return "NB-TEST000001" }
	return svc, carts
}

func validBilling() models.BillingDetails {
	return models.BillingDetails{
		FullName: "Hana Sato",
		Email:    "hana@example.com",
		Phone:    "555-0101",
		Address:  "12 Green Tea Lane",
	}
}

func validShipping() models.ShippingDetails {
	return models.ShippingDetails{
		FullName:   "Hana Sato",
		Address:    "12 Green Tea Lane",
		City:       "Portland",
		PostalCode: "9720",
	}
}

func validPayment() models.PaymentDetails {
	return models.PaymentDetails{
		CardNumber: "4111111111111111",
		ExpiryDate: "12/28",
		CVV:        "123",
		NameOnCard: "Hana Sato",
	}
}

// advanceTo walks the flow up to the given step with valid forms.
func advanceTo(t *testing.T, svc *CheckoutService, step models.CheckoutStep) {
	t.Helper()
	ctx := context.Background()

	if step == models.StepBilling {
		return
	}
	if fields, err := svc.SubmitBilling(ctx, testSession, validBilling()); err != nil || len(fields) > 0 {
		t.Fatalf("SubmitBilling: err=%v fields=%v", err, fields)
	}
	if step == models.StepShipping {
		return
	}
	if fields, err := svc.SubmitShipping(ctx, testSession, validShipping()); err != nil || len(fields) > 0 {
		t.Fatalf("SubmitShipping: err=%v fields=%v", err, fields)
	}
	if step == models.StepPayment {
		return
	}
	if fields, err := svc.SubmitPayment(ctx, testSession, validPayment()); err != nil || len(fields) > 0 {
		t.Fatalf("SubmitPayment: err=%v fields=%v", err, fields)
	}
}

func TestCheckoutStartsAtBilling(t *testing.T) {
	svc, _ := newTestCheckout(t)

	view, err := svc.State(context.Background(), testSession)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if view.Step != models.StepBilling {
		t.Errorf("Step = %q, want %q", view.Step, models.StepBilling)
	}
}

func TestSubmitBillingValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.BillingDetails)
		wantField string
	}{
		{"missing email", func(b *models.BillingDetails) { b.Email = "" }, "email"},
		{"whitespace full name", func(b *models.BillingDetails) { b.FullName = "   " }, "full_name"},
		{"missing phone", func(b *models.BillingDetails) { b.Phone = "" }, "phone"},
		{"missing address", func(b *models.BillingDetails) { b.Address = "" }, "address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestCheckout(t)
			ctx := context.Background()

			form := validBilling()
			tt.mutate(&form)

			fields, err := svc.SubmitBilling(ctx, testSession, form)
			if err != nil {
				t.Fatalf("SubmitBilling: %v", err)
			}
			if _, ok := fields[tt.wantField]; !ok {
				t.Errorf("fields = %v, want key %q", fields, tt.wantField)
			}

			view, _ := svc.State(ctx, testSession)
			if view.Step != models.StepBilling {
				t.Errorf("Step = %q, want billing (flow must not advance)", view.Step)
			}
		})
	}
}

func TestSubmitBillingAcceptsAnyNonEmptyEmail(t *testing.T) {
	// Billing only checks presence; format is not enforced at this step.
	svc, _ := newTestCheckout(t)
	ctx := context.Background()

	form := validBilling()
	form.Email = "not-an-email"

	fields, err := svc.SubmitBilling(ctx, testSession, form)
	if err != nil {
		t.Fatalf("SubmitBilling: %v", err)
	}
	if len(fields) > 0 {
		t.Errorf("fields = %v, want none", fields)
	}
}

func TestSubmitShippingValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.ShippingDetails)
		wantField string
	}{
		{"missing city", func(s *models.ShippingDetails) { s.City = "" }, "city"},
		{"postal too short", func(s *models.ShippingDetails) { s.PostalCode = "12" }, "postal_code"},
		{"postal non-numeric", func(s *models.ShippingDetails) { s.PostalCode = "abcd" }, "postal_code"},
		{"postal too long", func(s *models.ShippingDetails) { s.PostalCode = "12345" }, "postal_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestCheckout(t)
			advanceTo(t, svc, models.StepShipping)
			ctx := context.Background()

			form := validShipping()
			tt.mutate(&form)

			fields, err := svc.SubmitShipping(ctx, testSession, form)
			if err != nil {
				t.Fatalf("SubmitShipping: %v", err)
			}
			if _, ok := fields[tt.wantField]; !ok {
				t.Errorf("fields = %v, want key %q", fields, tt.wantField)
			}
		})
	}
}

func TestSubmitOutOfOrderIsRejected(t *testing.T) {
	svc, _ := newTestCheckout(t)
	ctx := context.Background()

	if _, err := svc.SubmitShipping(ctx, testSession, validShipping()); !errors.Is(err, ErrWrongStep) {
		t.Errorf("SubmitShipping at billing: err = %v, want ErrWrongStep", err)
	}
	if _, err := svc.SubmitPayment(ctx, testSession, validPayment()); !errors.Is(err, ErrWrongStep) {
		t.Errorf("SubmitPayment at billing: err = %v, want ErrWrongStep", err)
	}
	if _, err := svc.PlaceOrder(ctx, testSession); !errors.Is(err, ErrWrongStep) {
		t.Errorf("PlaceOrder at billing: err = %v, want ErrWrongStep", err)
	}
}

func TestSubmitPaymentValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.PaymentDetails)
		wantField string
	}{
		{"card too short", func(p *models.PaymentDetails) { p.CardNumber = "41111111" }, "card_number"},
		{"card non-numeric", func(p *models.PaymentDetails) { p.CardNumber = "4111x11111111111" }, "card_number"},
		{"bad expiry month", func(p *models.PaymentDetails) { p.ExpiryDate = "13/28" }, "expiry_date"},
		{"expiry wrong shape", func(p *models.PaymentDetails) { p.ExpiryDate = "2028-12" }, "expiry_date"},
		{"cvv too short", func(p *models.PaymentDetails) { p.CVV = "12" }, "cvv"},
		{"cvv too long", func(p *models.PaymentDetails) { p.CVV = "12345" }, "cvv"},
		{"name mismatch", func(p *models.PaymentDetails) { p.NameOnCard = "Someone Else" }, "name_on_card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestCheckout(t)
			advanceTo(t, svc, models.StepPayment)
			ctx := context.Background()

			form := validPayment()
			tt.mutate(&form)

			fields, err := svc.SubmitPayment(ctx, testSession, form)
			if err != nil {
				t.Fatalf("SubmitPayment: %v", err)
			}
			if _, ok := fields[tt.wantField]; !ok {
				t.Errorf("fields = %v, want key %q", fields, tt.wantField)
			}
		})
	}
}

func TestSubmitPaymentAcceptsSpacedCard(t *testing.T) {
	svc, _ := newTestCheckout(t)
	advanceTo(t, svc, models.StepPayment)
	ctx := context.Background()

	form := validPayment()
	form.CardNumber = "4111 1111 1111 1111"

	fields, err := svc.SubmitPayment(ctx, testSession, form)
	if err != nil {
		t.Fatalf("SubmitPayment: %v", err)
	}
	if len(fields) > 0 {
		t.Errorf("fields = %v, want none", fields)
	}

	view, _ := svc.State(ctx, testSession)
	if view.Draft.CardLast4 != "1111" {
		t.Errorf("CardLast4 = %q, want 1111", view.Draft.CardLast4)
	}
}

func TestSubmitPaymentNameMatchIsCaseInsensitive(t *testing.T) {
	svc, _ := newTestCheckout(t)
	advanceTo(t, svc, models.StepPayment)
	ctx := context.Background()

	form := validPayment()
	form.NameOnCard = "HANA SATO"

	fields, err := svc.SubmitPayment(ctx, testSession, form)
	if err != nil {
		t.Fatalf("SubmitPayment: %v", err)
	}
	if len(fields) > 0 {
		t.Errorf("fields = %v, want none", fields)
	}
}

func TestSubmitPaymentDeclined(t *testing.T) {
	svc, _ := newTestCheckout(t)
	svc.gateway.randFloat = alwaysDecline
	advanceTo(t, svc, models.StepPayment)
	ctx := context.Background()

	_, err := svc.SubmitPayment(ctx, testSession, validPayment())
	if !errors.Is(err, ErrPaymentDeclined) {
		t.Fatalf("err = %v, want ErrPaymentDeclined", err)
	}

	// One attempt only: the flow stays at payment so the user can retry.
	view, _ := svc.State(ctx, testSession)
	if view.Step != models.StepPayment {
		t.Errorf("Step = %q, want payment after decline", view.Step)
	}
}

func TestBackStepsTowardBilling(t *testing.T) {
	svc, _ := newTestCheckout(t)
	advanceTo(t, svc, models.StepPayment)
	ctx := context.Background()

	draft, err := svc.Back(ctx, testSession)
	if err != nil {
		t.Fatalf("Back: %v", err)
	}
	if draft.Step != models.StepShipping {
		t.Errorf("Step = %q, want shipping", draft.Step)
	}

	// Previously accepted data survives the move.
	if draft.Billing.FullName != "Hana Sato" {
		t.Errorf("Billing.FullName = %q, want preserved value", draft.Billing.FullName)
	}

	draft, _ = svc.Back(ctx, testSession)
	if draft.Step != models.StepBilling {
		t.Errorf("Step = %q, want billing", draft.Step)
	}

	// From billing, Back stays put.
	draft, _ = svc.Back(ctx, testSession)
	if draft.Step != models.StepBilling {
		t.Errorf("Step = %q, want billing (floor)", draft.Step)
	}
}

func TestApplyCoupon(t *testing.T) {
	svc, _ := newTestCheckout(t)
	ctx := context.Background()

	rate, ok, err := svc.ApplyCoupon(ctx, testSession, " MATCHA10 ")
	if err != nil || !ok || rate != 0.10 {
		t.Fatalf("ApplyCoupon = (%v, %v, %v), want (0.10, true, nil)", rate, ok, err)
	}

	view, _ := svc.State(ctx, testSession)
	if view.Draft.DiscountRate != 0.10 {
		t.Errorf("DiscountRate = %v, want 0.10", view.Draft.DiscountRate)
	}

	// An unknown code changes nothing.
	rate, ok, err = svc.ApplyCoupon(ctx, testSession, "espresso20")
	if err != nil || ok || rate != 0 {
		t.Fatalf("ApplyCoupon = (%v, %v, %v), want (0, false, nil)", rate, ok, err)
	}
	view, _ = svc.State(ctx, testSession)
	if view.Draft.DiscountRate != 0.10 {
		t.Errorf("DiscountRate = %v, want unchanged 0.10", view.Draft.DiscountRate)
	}
}

func TestPlaceOrderFreezesCartAndPricing(t *testing.T) {
	svc, carts := newTestCheckout(t)
	ctx := context.Background()

	carts.AddLine(ctx, testSession, line("ceremonial", 24.00, 2))
	carts.AddLine(ctx, testSession, line("whisk", 12.00, 1))
	if _, _, err := svc.ApplyCoupon(ctx, testSession, "matcha10"); err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}
	advanceTo(t, svc, models.StepReview)

	order, err := svc.PlaceOrder(ctx, testSession)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if order.OrderNumber != "NB-TEST000001" {
		t.Errorf("OrderNumber = %q", order.OrderNumber)
	}
	if order.Pricing.Subtotal != 60.00 || order.Pricing.Tax != 6.00 ||
		order.Pricing.ShippingCost != 0 || order.Pricing.DiscountAmount != 6.00 ||
		order.Pricing.Total != 60.00 {
		t.Errorf("Pricing = %+v, want 60/6/0/6/60", order.Pricing)
	}
	if order.EstimatedDelivery != "Sunday, March 15, 2026" {
		t.Errorf("EstimatedDelivery = %q", order.EstimatedDelivery)
	}
	if len(order.Lines) != 2 {
		t.Errorf("len(Lines) = %d, want 2", len(order.Lines))
	}

	// Cart and draft are reset.
	lines, _ := carts.GetLines(ctx, testSession)
	if len(lines) != 0 {
		t.Errorf("cart not cleared: %+v", lines)
	}
	view, _ := svc.State(ctx, testSession)
	if view.Step != models.StepBilling {
		t.Errorf("Step = %q, want billing after placement", view.Step)
	}

	// The frozen order is unaffected by later cart activity.
	carts.AddLine(ctx, testSession, line("latte-kit", 32.00, 1))
	stored, err := svc.CurrentOrder(ctx, testSession)
	if err != nil {
		t.Fatalf("CurrentOrder: %v", err)
	}
	if stored.Pricing.Total != 60.00 || len(stored.Lines) != 2 {
		t.Errorf("stored order mutated: %+v", stored.Pricing)
	}
}

func TestPlaceOrderExcludesSavedLines(t *testing.T) {
	svc, carts := newTestCheckout(t)
	ctx := context.Background()

	carts.AddLine(ctx, testSession, line("matcha", 24.00, 1))
	carts.AddLine(ctx, testSession, line("bar", 6.00, 1))
	carts.SaveForLater(ctx, testSession, "bar", "bar", models.DefaultSize)
	advanceTo(t, svc, models.StepReview)

	order, err := svc.PlaceOrder(ctx, testSession)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if len(order.Lines) != 1 || order.Lines[0].ID != "matcha" {
		t.Errorf("Lines = %+v, want only the active line", order.Lines)
	}
}

func TestPlaceOrderWithEmptyCart(t *testing.T) {
	svc, _ := newTestCheckout(t)
	advanceTo(t, svc, models.StepReview)

	order, err := svc.PlaceOrder(context.Background(), testSession)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if len(order.Lines) != 0 {
		t.Errorf("len(Lines) = %d, want 0", len(order.Lines))
	}
	if order.Pricing.Total != 0 {
		t.Errorf("Total = %v, want 0 (empty cart ships free)", order.Pricing.Total)
	}
}

func TestContinueShoppingClearsStoredOrder(t *testing.T) {
	svc, carts := newTestCheckout(t)
	ctx := context.Background()

	carts.AddLine(ctx, testSession, line("matcha", 24.00, 1))
	advanceTo(t, svc, models.StepReview)
	if _, err := svc.PlaceOrder(ctx, testSession); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if err := svc.ContinueShopping(ctx, testSession); err != nil {
		t.Fatalf("ContinueShopping: %v", err)
	}

	order, err := svc.CurrentOrder(ctx, testSession)
	if err != nil {
		t.Fatalf("CurrentOrder: %v", err)
	}
	if order != nil {
		t.Errorf("order = %+v, want nil after continue shopping", order)
	}
}

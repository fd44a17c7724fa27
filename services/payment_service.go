package services

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// ErrPaymentDeclined is the terminal user-facing outcome of a failed charge.
// The checkout flow makes exactly one attempt per submission; retrying is the
// user's decision.
var ErrPaymentDeclined = errors.New("payment was declined, please check your card details and try again")

// PaymentGateway simulates a card authorization: a fixed processing delay
// followed by a success roll. There is no real network call behind it.
type PaymentGateway struct {
	delay       time.Duration
	successRate float64
	randFloat   func() float64
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewPaymentGateway() *PaymentGateway {
	return &PaymentGateway{
		delay:       1500 * time.Millisecond,
		successRate: 0.8,
		randFloat:   rand.Float64,
		sleep:       sleepContext,
	}
}

// Charge blocks for the simulated processing delay, then succeeds with the
// configured probability. Context cancellation aborts the wait.
func (g *PaymentGateway) Charge(ctx context.Context, amount float64) error {
	if err := g.sleep(ctx, g.delay); err != nil {
		return err
	}
	if g.randFloat() < g.successRate {
		return nil
	}
	return ErrPaymentDeclined
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

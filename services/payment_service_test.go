package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestChargeApproved(t *testing.T) {
	g := NewPaymentGateway()
	g.sleep = noSleep
	g.randFloat = alwaysApprove

	if err := g.Charge(context.Background(), 42.50); err != nil {
		t.Errorf("Charge: %v", err)
	}
}

func TestChargeDeclined(t *testing.T) {
	g := NewPaymentGateway()
	g.sleep = noSleep
	g.randFloat = alwaysDecline

	if err := g.Charge(context.Background(), 42.50); !errors.Is(err, ErrPaymentDeclined) {
		t.Errorf("err = %v, want ErrPaymentDeclined", err)
	}
}

func TestChargeSingleRoll(t *testing.T) {
	g := NewPaymentGateway()
	g.sleep = noSleep

	rolls := 0
	g.randFloat = func() float64 {
		rolls++
		return 0.99
	}

	g.Charge(context.Background(), 10.00)
	if rolls != 1 {
		t.Errorf("rolls = %d, want exactly 1 (no automatic retry)", rolls)
	}
}

func TestChargeCanceledContext(t *testing.T) {
	g := NewPaymentGateway()
	g.randFloat = alwaysApprove

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Charge(ctx, 10.00); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestSleepContextWaits(t *testing.T) {
	start := time.Now()
	if err := sleepContext(context.Background(), 10*time.Millisecond); err != nil {
		t.Fatalf("sleepContext: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("returned after %v, want at least 10ms", elapsed)
	}
}

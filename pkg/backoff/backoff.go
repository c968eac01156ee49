// Package backoff espera exponencial con jitter completo para reintentos.
package backoff

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

const maxShift = 62

// Exponential devuelve base * 2^attempt con protección de overflow. attempt < 0 cuenta como 0.
func Exponential(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	if attempt < 0 {
		attempt = 0
	} else if attempt > maxShift {
		attempt = maxShift
	}
	multiplier := int64(1) << attempt
	if int64(base) > math.MaxInt64/multiplier {
		return time.Duration(math.MaxInt64)
	}
	return base * time.Duration(multiplier)
}

// FullJitter devuelve un valor aleatorio en [0, delay).
func FullJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}
	return time.Duration(rand.Int64N(int64(delay)))
}

// ExponentialWithJitter combina ambos: aleatorio en [0, base * 2^attempt), acotado por ceiling si es > 0.
func ExponentialWithJitter(base, ceiling time.Duration, attempt int) time.Duration {
	d := Exponential(base, attempt)
	if ceiling > 0 && d > ceiling {
		d = ceiling
	}
	return FullJitter(d)
}

// Sleep espera d o hasta que ctx termine.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

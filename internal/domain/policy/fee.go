package policy

import "time"

// FeeCalculator computes the fee charged when an appointment is cancelled
// inside the policy's notice window. Fee collection waits on a payments
// bounded context; until then the wired implementation is NoFee and the
// cancel use-case only records the computed amount.
type FeeCalculator interface {
	Fee(p *CancellationPolicy, appointmentStart time.Time, agreedPrice float64, now time.Time) float64
}

// NoFee never charges.
type NoFee struct{}

func (NoFee) Fee(*CancellationPolicy, time.Time, float64, time.Time) float64 {
	return 0
}

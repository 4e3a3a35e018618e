package domain

import "math"

// SplitTotal derives the platform fee and host payout from a guest-paid total
// in minor currency units. The total already includes the platform fee
// layered on top of the host's asking price, so the host portion is backed
// out as total / (1 + rate) and rounded half up; whatever is left over is the
// platform's, which keeps fee + payout equal to the total and pins any
// rounding residue on the platform side.
func SplitTotal(total int64, rate float64) (platformFee, hostPayout int64) {
	if total <= 0 || rate < 0 {
		return 0, total
	}

	hostPortion := float64(total) / (1 + rate)
	hostPayout = int64(math.Floor(hostPortion + 0.5))
	platformFee = total - hostPayout

	return platformFee, hostPayout
}

// QuoteTotal is the inverse used when pricing a checkout: the guest-paid
// total for a seat subtotal, fee layered on top, rounded half up.
func QuoteTotal(subtotal int64, rate float64) int64 {
	if subtotal <= 0 {
		return 0
	}
	return int64(math.Floor(float64(subtotal)*(1+rate) + 0.5))
}

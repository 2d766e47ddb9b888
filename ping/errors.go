package ping

import (
	"github.com/joomcode/errorx"

	"github.com/dcao/tagtime/lcg"
)

var (
	// Errors is the namespace of all scheduler errors.
	Errors = errorx.NewNamespace("ping")

	// ErrNonPositiveGap - requested average gap is zero or negative.
	ErrNonPositiveGap = Errors.NewType("non_positive_gap", lcg.ErrTraitContract)
	// ErrGapTooLarge - gap is so large the acceptance threshold truncates
	// to zero and no tick could ever qualify as a ping.
	ErrGapTooLarge = Errors.NewType("gap_too_large", lcg.ErrTraitContract)

	// EKGap - the rejected gap, in seconds.
	EKGap = errorx.RegisterPrintableProperty("gap")
)

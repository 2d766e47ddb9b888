package lcg

import (
	"github.com/joomcode/errorx"
)

var (
	// Errors is the namespace of all generator errors.
	Errors = errorx.NewNamespace("lcg")

	// ErrTraitContract marks a violated call contract: the caller has a
	// bug, not a runtime condition to handle. Mid-operation violations are
	// raised with errorx.Panic, construction-time ones are returned.
	ErrTraitContract = errorx.RegisterTrait("contract")

	// ErrBadModulus - modulus is nil or not positive.
	ErrBadModulus = Errors.NewType("bad_modulus", ErrTraitContract)
	// ErrNegativeCount - advance count is negative.
	ErrNegativeCount = Errors.NewType("negative_count", ErrTraitContract)

	// EKModulus - the rejected modulus.
	EKModulus = errorx.RegisterPrintableProperty("modulus")
	// EKCount - the rejected advance count.
	EKCount = errorx.RegisterPrintableProperty("count")
)

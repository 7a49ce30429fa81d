package libconfig

import "go.trai.ch/libtarget/internal/core/domain"

// Variants returns the variants of a library build in emit order.
// Callers index the result positionally and may modify it freely.
func Variants() []domain.Variant {
	return []domain.Variant{
		{Format: domain.FormatCommonJS2, Postfix: "common"},
		{Format: domain.FormatUMD, Postfix: "umd", GeneratesDemoPage: true},
		{Format: domain.FormatUMD, Postfix: "umd.min"},
	}
}

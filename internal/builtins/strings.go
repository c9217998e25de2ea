package builtins

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/maximvlas/flsgo/internal/interp"
	"github.com/maximvlas/flsgo/internal/value"
)

// RegisterStrings wires string-comparison and normalization natives:
// ordinal (compareStr), case-folded (compareText/sameText), and
// locale-aware collation (compareLocaleStr).
func RegisterStrings(i *interp.Interpreter) {
	i.DefineNative("compareStr", 2, func(args []value.Value, reportError func(string, ...any)) value.Value {
		a, b, ok := stringPairArg(args)
		if !ok {
			reportError("compareStr() expects two string arguments.")
			return value.NilValue
		}
		return value.NumberVal(float64(compareOrdinal(a, b)))
	})

	i.DefineNative("compareText", 2, func(args []value.Value, reportError func(string, ...any)) value.Value {
		a, b, ok := stringPairArg(args)
		if !ok {
			reportError("compareText() expects two string arguments.")
			return value.NilValue
		}
		return value.NumberVal(float64(compareOrdinal(strings.ToLower(a), strings.ToLower(b))))
	})

	i.DefineNative("sameText", 2, func(args []value.Value, reportError func(string, ...any)) value.Value {
		a, b, ok := stringPairArg(args)
		if !ok {
			reportError("sameText() expects two string arguments.")
			return value.NilValue
		}
		return value.BoolVal(strings.EqualFold(a, b))
	})

	// compareLocaleStr(a, b[, locale]) compares with a locale-aware,
	// case-insensitive collator; locale defaults to "en".
	i.DefineNative("compareLocaleStr", -1, func(args []value.Value, reportError func(string, ...any)) value.Value {
		if len(args) < 2 || len(args) > 3 {
			reportError("compareLocaleStr() expects 2 or 3 arguments.")
			return value.NilValue
		}
		a, b, ok := stringPairArg(args)
		if !ok {
			reportError("compareLocaleStr() expects string arguments.")
			return value.NilValue
		}
		locale := "en"
		if len(args) == 3 {
			loc, ok := stringArg(args, 2)
			if !ok {
				reportError("compareLocaleStr() expects a string locale.")
				return value.NilValue
			}
			locale = loc
		}
		tag, err := language.Parse(locale)
		if err != nil {
			tag = language.English
		}
		col := collate.New(tag, collate.IgnoreCase)
		return value.NumberVal(float64(compareOrdinal0(col.CompareString(a, b))))
	})

	// normalize(str) returns the Unicode NFC-normalized form of str.
	i.DefineNative("normalize", 1, func(args []value.Value, reportError func(string, ...any)) value.Value {
		s, ok := stringArg(args, 0)
		if !ok {
			reportError("normalize() expects one string argument.")
			return value.NilValue
		}
		return i.Intern(norm.NFC.String(s))
	})
}

// compareOrdinal returns -1/0/1 via Go's built-in string ordering.
func compareOrdinal(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareOrdinal0 clamps an arbitrary-magnitude comparator result (as
// collate.Collator.CompareString returns) to -1/0/1.
func compareOrdinal0(cmp int) int {
	switch {
	case cmp < 0:
		return -1
	case cmp > 0:
		return 1
	default:
		return 0
	}
}

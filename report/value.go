package report

import (
	"fmt"
	"strconv"
)

// Kind discriminates the three shapes a reported metric can take.
type Kind uint8

const (
	// KindInvalid is the zero Value's kind — what a lookup of an absent
	// report key yields. It never comes out of a constructor, so consumers
	// can tell a missed key from any real metric.
	KindInvalid Kind = iota

	// KindFormatted is a ratio or statistic rendered as fixed 4-decimal text.
	KindFormatted

	// KindCount is an integer sample count.
	KindCount

	// KindUndefined marks a metric whose defining denominator was zero.
	// It renders as "0" but stays distinguishable from a genuine 0.0000.
	KindUndefined
)

// Value is a single reported metric. Construct values with Formatted,
// Interval, CountOf or Undefined; the zero Value is KindInvalid.
type Value struct {
	Kind Kind
	Text string // set for KindFormatted
	N    int    // set for KindCount
}

// Formatted renders x as fixed 4-decimal text.
func Formatted(x float64) Value {
	return Value{Kind: KindFormatted, Text: strconv.FormatFloat(x, 'f', 4, 64)}
}

// Interval renders a [lower-upper] confidence-interval pair, 4 decimals each.
func Interval(lower, upper float64) Value {
	return Value{Kind: KindFormatted, Text: fmt.Sprintf("[%.4f-%.4f]", lower, upper)}
}

// CountOf wraps an integer count.
func CountOf(n int) Value {
	return Value{Kind: KindCount, N: n}
}

// Undefined marks a degenerate (zero-denominator) metric.
func Undefined() Value {
	return Value{Kind: KindUndefined}
}

// IsUndefined reports whether the metric's denominator was degenerate.
func (v Value) IsUndefined() bool { return v.Kind == KindUndefined }

// String renders the value the way the report prints it: formatted text
// as-is, counts in decimal, undefined metrics as the bare number 0. The
// zero Value renders "<invalid>" so a missed key surfaces in output.
func (v Value) String() string {
	switch v.Kind {
	case KindFormatted:
		return v.Text
	case KindCount:
		return strconv.Itoa(v.N)
	case KindUndefined:
		return "0"
	default:
		return "<invalid>"
	}
}

// Package potential generates discretized potential-energy profiles for
// ten well and barrier shapes.
//
// Each shape is a pointwise rule evaluated over a shared uniform grid;
// [Generate] brackets the samples with infinite-wall sentinels at the
// domain boundaries. Amplitude means something different per shape:
// height, slope, curvature, or field strength.
package potential

// Package figure builds multi-panel gonum/plot figures from
// time-series-like data.
//
// A Figure is a grid of axes, one per group of datasets. The caller hands
// New a flat list of inputs and the figure decides how they map onto axes:
//
//   - a plain dataset joins the current axes, or gets its own axes when
//     the inputs are heterogeneous or Separate is requested,
//   - a List is one axes holding all of its datasets,
//   - a Dict is one axes holding its values in insertion order.
//
// Axes in the grid can share their x- or y-scale with the whole grid, with
// their row or with their column. Shared axes hold the same *Scale, so
// autoscaling resolves one range for all of them.
//
// Datasets that know their x-axis unit (the XUniter interface) steer the
// default x-scale: if every input agrees on a time unit, the figure uses a
// relative-time axis and a wide default size.
//
// Beyond the grid, a figure manages colorbars for image-like layers
// (Colorbar) and thin categorical segment bars attached above or below an
// axes (AddSegmentsBar).
//
// All rendering, tick generation and output formats are delegated to
// gonum.org/v1/plot.
package figure

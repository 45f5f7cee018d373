// Package geom provides the 2D profile and grid layout primitives that
// every generator is built from: indexed polycurve construction with
// alternating line/arc segments, arc flattening for mesh preview, and
// rectangular grid instancing offsets.
package geom

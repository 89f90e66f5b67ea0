// Package sitedata implements the per-site and per-pin/per-site data containers
// used to carry measurement and configuration values through a multi-site test.
//
// # Containers
//
// Two immutable containers are provided:
//
//	SiteData[T]     site number -> T
//	PinSiteData[T]  pin name -> SiteData[T]
//
// A site number is a non-negative integer identifying a parallel DUT test slot.
// The reserved site number SystemSite (-1) holds site-agnostic data. A system
// value answers every site lookup that has no explicit entry, so a container
// holding only a system value returns it for any site:
//
//	supply := sitedata.NewSystem(-22.5)
//	v, _ := supply.GetValue(3) // -22.5
//
// In a PinSiteData, a pin whose SiteData holds only a system value is a
// system pin. DUT pins and system pins may be mixed freely in one container.
//
// # Construction
//
// SiteData is built from a slice (sites 0..n-1), parallel site/value slices,
// a site slice and one broadcast value, or a site map. PinSiteData is built
// from a nested map, parallel pin/SiteData slices, pin-major or site-major
// jagged slices, per-pin or per-site slices, or one broadcast value. All
// constructors validate their input and fail with ErrArgument on duplicate
// keys, mismatched lengths or invalid site numbers.
//
// # Elementwise Operations
//
// Binary operations take a container and an operand. An operand is one of:
//
//	Scalar(v)         one value for every key
//	PerSite[T]{...}   one value per site (broadcast across pins)
//	PerPin[T]{...}    one value per pin (broadcast across sites)
//	*SiteData[T]      a container, per site
//	*PinSiteData[T]   a container, per pin and site
//
// The result key set is the union of the operands' keys. A key missing from
// one operand is resolved through that operand's system value; a key that
// cannot be resolved fails with a *KeyNotFoundError naming it.
//
//	offset, err := sitedata.Add(measured, sitedata.Scalar(5.0))
//	ratio, err := sitedata.PinDivide(vdd, vddReference)
//
// Functions taking a SiteData are named after the operation (Add, Compare,
// ShiftLeft, ...). The PinSiteData forms carry a Pin prefix (PinAdd,
// PinCompare, PinShiftLeft, ...). Element type requirements are expressed as
// generic constraints, so bitwise operations on float64 do not compile.
// ApplyBinary and ApplyUnary dispatch on an operation code at runtime and
// report unsupported combinations with ErrType before any element is touched.
//
// # Reductions and Extraction
//
// Max, Min and Mean reduce a SiteData across sites. MaxAcrossPins,
// MaxByPin, MaxBySite, MeanBySite and friends reduce a PinSiteData along
// one or both axes. Every tied winner is reported. NaN never wins over a
// number; a reduction over NaN only yields NaN held by every key. Mean
// follows IEEE arithmetic, so a NaN entry makes the mean NaN.
//
// ExtractSite, ExtractPin and ExtractPins slice a PinSiteData; Combine merges
// two PinSiteData with disjoint keys.
//
// # Concurrency
//
// Containers are never modified after construction. They are safe for
// concurrent readers without locking. Unchanged per-pin SiteData instances
// are shared between containers.
package sitedata

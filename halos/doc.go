// Package halos provides the minimal catalog structures halopop models read
// from: a keyed column Table standing in for a halo or galaxy catalog, and
// MassInput, the tagged union through which every model receives halo
// masses.
//
// A MassInput carries exactly one of three channels: a raw mass slice, a
// halo table, or a galaxy table. Galaxy tables store host-halo properties
// under the "halo_" prefix (halo_mvir for mvir). Resolve walks the channels
// in the fixed order galaxy table → halo table → raw slice and validates
// that every mass is finite and positive.
package halos

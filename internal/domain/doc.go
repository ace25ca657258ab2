// Package domain models OMNI-style solar-wind and geomagnetic-index samples.
//
// # Data Source
//
// Records originate from NASA OMNIWeb high-resolution exports
// (https://omniweb.gsfc.nasa.gov/), downloaded as column-aligned .lst text
// files. Each line is one time sample with 19 whitespace-aligned fields:
//
//	Year  Day  Hour  Minute  Field_Magnitude_Avg  BX  BY  BZ  Speed
//	Proton_Density  Proton_Temperature  Electric_Field  Plasma_Beta
//	Alfven_Mach_Number  AE_Index  AL_Index  AU_Index  SYM_D  SYM_H
//
// # Time Encoding
//
// OMNI encodes sample time as (Year, Day-of-year, Hour, Minute) with
// Day-of-year in ordinal form (1 = January 1st). [ComposeDateTime] combines
// the four components into a UTC time.Time. Components that do not form a
// valid calendar instant produce the zero time.Time, which downstream code
// treats as "timestamp unknown" — one bad row never affects another.
//
// # Field Conventions
//
// All measurement fields are floating point. Fields that could not be decoded
// from the source file are NaN: NaN magnitudes never pass a filter bound and
// are skipped by the min/max/mean helpers, matching how the original export's
// fill values behave in aggregate math.
//
// BX/BY/BZ are the GSE Cartesian components of the interplanetary magnetic
// field in nanotesla. Field_Magnitude_Avg is the interval-averaged field
// strength, also in nanotesla, and drives the dashboard's color scale.
package domain

// Package domain models the monthly global land-surface temperature dataset.
//
// # Data Source
//
// The dataset is a single static JSON document published by freeCodeCamp at
// https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json.
// It is derived from the Berkeley Earth land-surface record and covers
// January 1753 through September 2015.
//
// # Shape
//
//	{
//	  "baseTemperature": 8.66,
//	  "monthlyVariance": [
//	    {"year": 1753, "month": 1, "variance": -1.366},
//	    ...
//	  ]
//	}
//
// baseTemperature is the 1951–1980 average in degrees Celsius. Each entry's
// variance is the signed offset from that baseline for one calendar month.
// Months are 1-indexed in the source (1 = January). Everything downstream of
// [ParseDataset] uses the 0-indexed month from [Observation.MonthIndex], which
// is also the value exposed in rendered markup as data-month.
//
// # Derived Temperature
//
// The absolute temperature of an observation is baseTemperature + variance.
// It is never stored; [Dataset.Temperature] recomputes it wherever it is
// needed (cell fill, data-temp attribute, tooltip text).
//
// # Assumptions
//
// The source has one entry per month per year with no duplicates and no gaps.
// This is not enforced: a missing month simply renders as an empty cell, and a
// duplicate draws a second rectangle over the first.
package domain

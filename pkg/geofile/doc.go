// Package geofile reads sites from and writes regions to geographic files.
//
// Supported inputs are CSV tables with latitude/longitude columns and KML
// Placemark points. Regions can be written as KML, GeoJSON or WKT. The
// package also computes the centroid of a KML polygon.
//
// File coordinates are always longitude/latitude. Axis decides how they map
// onto the planar (X, Y) used by package voronoi; writers apply the inverse
// mapping, so a read-compute-write round trip preserves orientation.
package geofile

// Package common keeps small types shared by the rendering packages and the
// command line front end, so neither has to import the other.
package common

// Category of a fatal run failure.
// ENUM(validation, schema, resource, io)
type ErrorKind int

// Verbosity of a logger.
// ENUM(none, debug, normal)
type LogLevel int

// How existing log file is treated.
// ENUM(append, overwrite)
type LogMode int

// Source of the base color used when the table palette is derived from the
// background image.
// ENUM(mean, dominant, kmeans)
type PaletteSource int

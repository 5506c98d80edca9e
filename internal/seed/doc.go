// Package seed loads the reference data set into an empty database and
// attaches character portraits from a directory of image files.
package seed

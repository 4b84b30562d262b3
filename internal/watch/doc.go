// Package watch polls revision sources and notifies handlers when they were mutated.
package watch

// Package config loads the domain-specific classification hierarchy a
// deployment supplies once at process initialization, and turns it into
// a [classtree.Tree].
package config

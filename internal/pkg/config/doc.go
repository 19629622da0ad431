// Package config holds the validated settings structs for logging and key
// derivation.
package config

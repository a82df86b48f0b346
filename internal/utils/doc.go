// Package utils provides small HTTP helpers shared by the augment server
// handlers and the adapter that talks to them.
package utils

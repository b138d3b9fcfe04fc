// Package utils provides small helpers shared across features.
// It mainly converts loosely typed JSON values from catalog payloads, where the
// same field may arrive as a number or a string.
package utils

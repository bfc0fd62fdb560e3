// Package utils provides small helpers shared across packages, such as lenient
// conversion of decoded JSON values.
package utils

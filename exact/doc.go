// Package exact computes closed answers to the exercises that do not need
// simulation: small dynamic-programming recurrences and exhaustive
// enumerations. Results that are ratios of integers are returned exactly,
// as big.Rat or as a Count of hits over a total.
package exact

// Package complexity provides the measurement side of the soup kernel:
// Shannon entropy and a compression-ratio proxy for Kolmogorov complexity.
// Hosts score candidate regions with these to drive selection.
package complexity

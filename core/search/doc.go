package search

// Package search enumerates storage-block configurations over inclusive
// bounds and blends the four expected cycle times into the pho_c and
// phi_c cost metrics for every weighting coefficient.

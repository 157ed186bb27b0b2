// Package report filters grid-search results by capacity and stack height
// and selects, for every alpha, the configurations minimising pho_c and
// phi_c.
package report

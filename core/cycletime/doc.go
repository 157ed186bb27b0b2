package cycletime

// Package cycletime computes expected yard-crane cycle times for storage
// blocks. Every operation is a fixed sequence of legs (travel, handling
// pause or the slower of two concurrent travels) summed into minutes.
// The Model carries all physical parameters so callers never depend on
// process-wide tables.

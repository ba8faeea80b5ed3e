package common

// UnknownStr is the name printed for values outside a known enumeration.
const UnknownStr = "unknown"

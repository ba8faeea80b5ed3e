// Package diagnostic provides structured errors and warnings for mapping
// files.
//
// Key capabilities:
//   - Error and warning collection with stable codes
//   - Location by map entry and key path
//   - Suggested fixes
package diagnostic

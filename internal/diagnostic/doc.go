// Package diagnostic provides structured errors and warnings for the
// bitenum generator.
//
// Every problem found while expanding a type is fatal for that type and is
// reported as a Diagnostic naming the offending element:
//   - malformed directives
//   - missing, non-literal or out-of-range discriminants
//   - exhaustiveness, conditional and variant count mismatches
package diagnostic

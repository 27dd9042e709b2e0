// Package writers turns classification results into files and reports.
//
// Design:
//   • Writers own all presentation knowledge (TSV rows, report text, JSON).
//   • classify/stats stay domain-only; pipeline stays orchestration-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers

// Package pipeline runs the per-file-pair validation over a whole batch.
//
// Every pair is loaded, matched and classified independently by a
// Processor; workers only write their own result slot and the results are
// merged once, in input order, after all workers finish.
package pipeline

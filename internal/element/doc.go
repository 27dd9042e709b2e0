// Package element holds the value types shared by every stage of the
// validation run: ground-truth intervals, retrotransposon records and
// candidate-graph nodes. It never imports parsers, writers or app code.
package element

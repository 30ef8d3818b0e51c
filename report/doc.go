// Package report defines the AIFR data model: the raw form-submitted flaw
// report, the resolved system identity, and the processed report produced by
// the pipeline. All values are immutable after construction; each pipeline
// stage produces a new value rather than mutating its input.
package report

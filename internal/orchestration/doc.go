// Package orchestration drives the timing sweep: it runs each selected
// summation strategy over every input size, averages repeated trials and
// hands progress to the presentation layer through the ProgressReporter
// interface.
package orchestration

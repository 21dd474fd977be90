// Package autocommit drives a single commit message generation: read the
// diff, ask the model for a structured commit, then show, confirm and
// commit it.
//
// The flow is strictly linear. Every failure aborts the run and no step is
// retried.
package autocommit

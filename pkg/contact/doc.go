// Package contact validates and submits the portfolio contact form.
//
// Validate is a pure per-field check with a fixed rule order; ValidateForm
// runs it over every relevant field and reports each verdict to a
// FieldAnnotator. Form ties validation to a Notifier, a View and a
// Submitter:
//
//	form := contact.NewForm(notifier, contact.SimulatedSubmitter{Latency: 2 * time.Second}, view)
//	outcome, err := form.Submit(ctx, fields).Await()
//
// Submitter is the seam for a delivery backend. The only implementation
// shipped is SimulatedSubmitter, which waits and succeeds.
package contact

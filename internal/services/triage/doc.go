/*
Package triage turns a fraud risk score into an analyst-facing decision.

The package has two pure building blocks:

  - AssignPriority maps a risk score and contextual signals (amount, velocity
    flag, geo mismatch) to HIGH, MEDIUM or LOW.
  - GenerateExplanation renders the compliance-safe text that accompanies the
    priority in the review queue.

Both are stateless and safe for concurrent use.

The Service wires them into a pipeline:

	svc := triage.NewService(scorer, store, cache, metrics)

	result, err := svc.Analyze(ctx, models.Transaction{
	    Amount:       1200,
	    VelocityFlag: true,
	    Features:     features,
	})

Analyze asks the injected scoring.Scorer for a score, rejects scores outside
[0, 1], assigns the priority, builds the explanation and records an
Assessment for the analyst queue. Recording is best effort: a failing store
is logged and the result is still returned without an assessment ID.

Error Handling:

  - ErrInvalidTransaction: negative or non-finite amount
  - ErrScoringFailed: the scorer returned an error
  - ErrInvalidScore: the scorer returned a value that is not a probability
  - ErrAssessmentNotFound: lookup of an unknown assessment
*/
package triage

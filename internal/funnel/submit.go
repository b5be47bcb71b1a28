package funnel

import (
	"github.com/perfily/perfily-cli/internal/api"
	"github.com/perfily/perfily-cli/internal/catalog"
)

// BeginSubmit builds the scoring request and marks a submission in flight.
// Returns false, a silent no-op, when a submission is already outstanding,
// no test is selected, or no answers are recorded. Both initial scoring and
// unlock polling funnel through this single guard, so overlapping triggers
// never produce duplicate network calls.
func (c *Controller) BeginSubmit() (api.ResultRequest, bool) {
	if c.submitting {
		return api.ResultRequest{}, false
	}
	if c.sess.TestType == "" {
		return api.ResultRequest{}, false
	}
	test, ok := catalog.Lookup(c.sess.TestType)
	if !ok {
		return api.ResultRequest{}, false
	}
	answers := c.sess.Submission()
	if len(answers) == 0 {
		return api.ResultRequest{}, false
	}

	c.submitting = true
	c.errMsg = ""
	return api.ResultRequest{TestCode: test.APICode, Answers: answers}, true
}

// FinishSubmit applies the outcome of an initial scoring submission. Success
// stores the result verbatim and moves to RESULT or PREVIEW on the
// completeness flag; failure leaves any prior result untouched and falls
// back to LANDING with the generic message.
func (c *Controller) FinishSubmit(res *api.Result, err error) {
	c.submitting = false

	if err != nil {
		c.log.Error().Err(err).Str("test", c.sess.TestType).Msg("get result failed")
		c.errMsg = GenericErrorMessage
		c.step = Next(c.step, SubmitFinished{Err: err})
		return
	}

	c.sess.Result = res
	c.persist()
	c.step = Next(c.step, SubmitFinished{Complete: res.Complete})
}

// FinishUnlockCheck applies the outcome of a payment-state unlock poll. The
// step only ever leaves PAYMENT when the API reports completeness; an error
// sets the generic message and stays. Returns whether the report unlocked.
func (c *Controller) FinishUnlockCheck(res *api.Result, err error) bool {
	c.submitting = false

	if err != nil {
		c.log.Error().Err(err).Str("test", c.sess.TestType).Msg("unlock check failed")
		c.errMsg = GenericErrorMessage
		c.step = Next(c.step, UnlockChecked{Err: err})
		return false
	}

	c.sess.Result = res
	c.persist()
	c.step = Next(c.step, UnlockChecked{Complete: res.Complete})
	return res.Complete
}

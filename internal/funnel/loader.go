package funnel

import (
	"github.com/perfily/perfily-cli/internal/api"
	"github.com/perfily/perfily-cli/internal/catalog"
)

// BeginLoad marks a session load in flight and returns the test
// configuration to load. Returns false, a silent no-op, when the slug is
// unknown or a load is already outstanding.
func (c *Controller) BeginLoad(slug string) (catalog.Test, bool) {
	if c.loading {
		return catalog.Test{}, false
	}
	test, ok := catalog.Lookup(slug)
	if !ok {
		return catalog.Test{}, false
	}
	c.loading = true
	c.errMsg = ""
	return test, true
}

// FinishLoad applies the outcome of a load begun with BeginLoad.
//
// On success the session identity, API echo fields, and question cache are
// replaced and answers/result cleared in the same update. On failure the
// question cache is dropped and the API session identity cleared, but
// TestType survives so the user is not bounced out of context; the error is
// folded into the generic message.
func (c *Controller) FinishLoad(slug string, started *api.StartSession, err error) {
	c.loading = false

	if err != nil {
		c.log.Error().Err(err).Str("test", slug).Msg("start test failed")
		c.errMsg = GenericErrorMessage
		c.questions = nil
		c.questionsFor = ""
		c.sess.clearAPISession()
		c.persist()
		c.step = Next(c.step, LoadFinished{Err: err})
		return
	}

	c.sess = Session{
		ID:         started.Session.ID,
		TestType:   slug,
		Answers:    make(map[int]string),
		APIVersion: started.Session.Version,
		APIStatus:  started.Session.Status,
	}
	c.questions = started.Questions
	c.questionsFor = slug
	c.persist()

	c.log.Info().
		Str("test", slug).
		Str("session", started.Session.ID).
		Int("questions", len(started.Questions)).
		Msg("test session started")

	c.step = Next(c.step, LoadFinished{})
}

package funnel

import (
	"strings"

	"github.com/perfily/perfily-cli/internal/catalog"
)

// SyncRoute reconciles the session and step with an externally observed
// route path. Invoked once at startup and once per navigation event; safe to
// call redundantly.
//
// A path addressing the test the session is already bound to, with a live
// API session id, preserves in-progress answers. Anything else addressing a
// known slug resets the session to that test.
func (c *Controller) SyncRoute(path string) {
	slug := slugFromPath(path)
	if slug == "" {
		c.step = Next(c.step, RouteHome{})
		return
	}

	if _, ok := catalog.Lookup(slug); !ok {
		c.step = Next(c.step, RouteHome{})
		return
	}

	if c.sess.TestType != slug || c.sess.ID == "" {
		c.sess.resetForTest(slug)
		c.persist()
	}
	c.step = Next(c.step, RouteTest{})
}

// slugFromPath strips the leading separator; "/" and "" yield no slug.
func slugFromPath(path string) string {
	return strings.TrimPrefix(path, "/")
}

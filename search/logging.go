package search

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/keymaze/grid"
)

// WithLogger reports search progress to a logrus entry: every new best
// distance at Info, queue trims at Warn and finished stages at Debug. Hooks
// installed by earlier options keep running after the log line.
func WithLogger(entry *log.Entry) Option {
	return func(o *Options) {
		if entry == nil {
			return
		}
		onIncumbent, onTrim, onStage := o.OnIncumbent, o.OnTrim, o.OnStage

		o.OnIncumbent = func(distance int, path []grid.LandmarkID) {
			entry.WithFields(log.Fields{
				"distance": distance,
				"moves":    len(path) - 1,
			}).Info("new best distance found")
			onIncumbent(distance, path)
		}
		o.OnTrim = func(before, after int) {
			entry.WithFields(log.Fields{
				"before": before,
				"after":  after,
			}).Warn("search queue trimmed")
			onTrim(before, after)
		}
		o.OnStage = func(r StageReport) {
			entry.WithFields(log.Fields{
				"budget":     r.Budget,
				"exhaustive": r.Exhaustive(),
				"best":       r.Best,
				"expanded":   r.Expanded,
			}).Debug("search stage finished")
			onStage(r)
		}
	}
}

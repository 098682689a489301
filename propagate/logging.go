package propagate

import log "github.com/sirupsen/logrus"

// WithLogger writes one Debug line per sweep to entry, then runs any hook
// installed by an earlier option.
func WithLogger(entry *log.Entry) Option {
	return func(o *Options) {
		if entry == nil {
			return
		}
		next := o.OnSweep
		o.OnSweep = func(sweep, changed int) {
			entry.WithFields(log.Fields{
				"sweep":   sweep,
				"changed": changed,
			}).Debug("propagation sweep")
			next(sweep, changed)
		}
	}
}

// Package eligibility talks to the authority that decides whether a car may
// be used abroad. The real authority is a slow remote system; this checker
// reproduces its call contract: one blocking question, one boolean answer,
// no timeout and no retry.
package eligibility

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	minPause = 1 * time.Second
	maxPause = 5 * time.Second
)

type Checker struct {
	log *logrus.Entry
}

func NewChecker(log *logrus.Entry) *Checker {
	return &Checker{log: log}
}

// IsCountriesAllowed pauses for one to five seconds, then answers. An empty
// country list is always allowed; otherwise the verdict depends on the
// country count, matching the upstream authority's stand-in behaviour.
func (c *Checker) IsCountriesAllowed(ctx context.Context, vin string, countries []string) (bool, error) {
	c.log.WithFields(logrus.Fields{
		"vin":       vin,
		"countries": countries,
	}).Info("checking if countries are allowed for car")

	allowed := len(countries) == 0 || len(countries)%2 == 0

	// The shared rand source is safe for concurrent checkers.
	pause := minPause + time.Duration(rand.Int63n(int64(maxPause-minPause)))
	time.Sleep(pause)

	c.log.WithFields(logrus.Fields{
		"vin":     vin,
		"allowed": allowed,
	}).Info("country checker verdict")

	return allowed, nil
}

package service

import (
	"time"

	"github.com/google/uuid"
)

type config struct {
	newID func() string
	now   func() time.Time
	loc   *time.Location
}

func defaultConfig() config {
	return config{
		newID: uuid.NewString,
		now:   time.Now,
		loc:   time.Local,
	}
}

// Option overrides an injected capability (id generator, clock, time zone).
// Production code uses the defaults; tests pin them down.
type Option func(*config)

func WithIDGenerator(fn func() string) Option {
	return func(c *config) { c.newID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(c *config) { c.now = fn }
}

func WithLocation(loc *time.Location) Option {
	return func(c *config) { c.loc = loc }
}

// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

package audit

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sudeeprj-pks/SCT-CS-3/pkg/strength"
)

type status struct {
	assessed  uint64
	byRating  [5]uint64
	estimated uint64
	start     time.Time
	ticker    *time.Ticker
	progress  chan bool
}

func newStatus(estimated uint64) *status {
	return &status{
		estimated: estimated,
		start:     time.Now(),
		ticker:    time.NewTicker(5 * time.Second),
		progress:  make(chan bool),
	}
}

// BeginProgress reports the progress of the audit every 5 seconds.
func (s *status) BeginProgress() {
	go func() {
		for {
			select {
			case <-s.progress:
				return
			case <-s.ticker.C:
				done := atomic.LoadUint64(&s.assessed)
				if s.estimated > 0 {
					log.Info().Msgf("%.2f%% of candidates assessed. %.0f candidates/s", float64(done)*100/float64(s.estimated), s.perSecond())
				} else {
					log.Info().Msgf("%d candidates assessed. %.0f candidates/s", done, s.perSecond())
				}
			}
		}
	}()
}

func (s *status) Assessed(rating strength.Rating) {
	atomic.AddUint64(&s.assessed, 1)
	if rating >= strength.VeryWeak && rating <= strength.VeryStrong {
		atomic.AddUint64(&s.byRating[rating], 1)
	}
}

func (s *status) perSecond() float64 {
	elapsed := time.Since(s.start)
	if elapsed.Nanoseconds() > 0 {
		return float64(atomic.LoadUint64(&s.assessed)) / elapsed.Seconds()
	}
	return float64(atomic.LoadUint64(&s.assessed))
}

func (s *status) Done() {
	s.progress <- true
	s.ticker.Stop()

	p := message.NewPrinter(language.English)
	log.Info().Msgf("finished assessing %s candidates in %v. %.0f candidates/s",
		p.Sprintf("%d", atomic.LoadUint64(&s.assessed)), time.Since(s.start), s.perSecond())

	for rating := strength.VeryWeak; rating <= strength.VeryStrong; rating++ {
		log.Info().Msgf("%s: %s candidates", rating, p.Sprintf("%d", atomic.LoadUint64(&s.byRating[rating])))
	}
}

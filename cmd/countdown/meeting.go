package main

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-countdown/engine"
	"github.com/lixenwraith/vi-countdown/schedule"
)

// starter is the part of the widget the planner drives
type starter interface {
	Start(secondsAlreadyElapsed int)
}

// meetingPlanner arms the widget so each countdown ends as the next meeting begins
// Arming one meeting immediately schedules the next, so the chain survives stops and restarts
// All methods run on the scheduler thread
type meetingPlanner struct {
	sched   engine.Scheduler
	widget  starter
	expr    string
	logger  zerolog.Logger
	pending engine.Task
	armed   time.Time // Meeting of the last countdown started, zero before the first
}

func newMeetingPlanner(sched engine.Scheduler, widget starter, expr string, logger zerolog.Logger) *meetingPlanner {
	return &meetingPlanner{
		sched:  sched,
		widget: widget,
		expr:   expr,
		logger: logger.With().Str("meeting", expr).Logger(),
	}
}

// plan replaces any pending start with one for the next meeting not yet armed
func (p *meetingPlanner) plan() {
	if p.pending != nil {
		p.pending.Cancel()
		p.pending = nil
	}

	now := p.sched.Now()
	after := now
	if after.Before(p.armed) {
		after = p.armed
	}

	next, err := schedule.NextAfter(p.expr, after, now)
	if err != nil {
		p.logger.Error().Err(err).Msg("meeting planning failed")
		return
	}

	if next.Due() {
		p.logger.Info().Time("at", next.Meeting).Int("elapsed", next.AlreadyElapsed).Msg("meeting countdown already due")
		p.arm(next.Meeting, next.AlreadyElapsed)
		return
	}

	p.logger.Info().Time("at", next.Meeting).Dur("delay", next.Delay).Msg("meeting countdown scheduled")
	p.pending = p.sched.ScheduleAfter(next.Delay, func() {
		p.pending = nil
		p.arm(next.Meeting, 0)
	})
}

// arm starts the countdown for meeting and chains the following occurrence
func (p *meetingPlanner) arm(meeting time.Time, elapsed int) {
	p.armed = meeting
	p.widget.Start(elapsed)
	p.plan()
}

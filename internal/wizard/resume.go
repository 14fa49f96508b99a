package wizard

import (
	"fmt"

	"javaterra/internal/utils"
)

// Load inspects the draft store on page load and returns the resume prompt
// to show, if any. A completion marker with no drafts means the last booking
// went through, so nothing is offered.
func (c *Controller) Load() (ResumeOffer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.offer = ResumeOffer{}
	trip, okTrip, err := c.store.Trip()
	if err != nil {
		return c.offer, err
	}
	bio, okBio, err := c.store.Biodata()
	if err != nil {
		return c.offer, err
	}

	switch {
	case okTrip && okBio:
		c.offer = ResumeOffer{Kind: ResumeTripAndBiodata, Prompt: NoticeResumeBiodata, Trip: trip, Biodata: bio}
	case okTrip:
		c.offer = ResumeOffer{Kind: ResumeTrip, Prompt: NoticeResumeTrip, Trip: trip}
	case okBio:
		// biodata tanpa trip tidak bisa dilanjutkan
		utils.LogEvent(c.sessionID, "wizard", "load", "orphan biodata draft discarded")
		if err := c.store.ClearBiodata(); err != nil {
			return c.offer, fmt.Errorf("discard orphan biodata: %w", err)
		}
	}
	return c.offer, nil
}

// Resume answers the prompt from Load. Accepting repopulates the forms and
// jumps to step 1 (trip only) or step 2 (both drafts). Declining discards the
// offered drafts and starts at step 1.
func (c *Controller) Resume(accept bool) (Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tr := Transition{From: c.state.Step, To: c.state.Step}
	if c.state.Submitting || c.state.Completed {
		return tr, ErrWrongStep
	}
	offer := c.offer
	c.offer = ResumeOffer{}
	if offer.Kind == ResumeNone {
		return tr, nil
	}

	if !accept {
		var err error
		switch offer.Kind {
		case ResumeTrip:
			err = c.store.ClearTrip()
		case ResumeTripAndBiodata:
			err = c.store.ClearDrafts()
		}
		c.reset()
		tr.To = StepTrip
		if err != nil {
			return tr, fmt.Errorf("discard drafts: %w", err)
		}
		return tr, nil
	}

	c.trip = offer.Trip.Form()
	c.state.Step = StepTrip
	if offer.Kind == ResumeTripAndBiodata {
		c.bio = offer.Biodata
		c.state.Step = StepBiodata
	}
	tr.To = c.state.Step
	utils.LogEvent(c.sessionID, "wizard", "resume", "step="+c.state.Step.String())
	return tr, nil
}

package paradigm

import "gonum.org/v1/gonum/mat"

// mttRelative builds the mental time travel contrasts, relative setting. The
// west-east and south-north runs share one layout: a prefix ("we", "sn") and
// the two sides of the spatial axis.
func mttRelative(id, prefix, sideA, sideB string) Entry {
	p := func(s string) string { return prefix + "_" + s }
	aEvent, bEvent := p(sideA+"side_event"), p(sideB+"side_event")
	aMinusB := sideA + "side-" + sideB + "side_event"
	bMinusA := sideB + "side-" + sideA + "side_event"

	names := []string{
		p("average_reference"),
		p("all_space_cue"),
		p("all_time_cue"),
		aEvent,
		bEvent,
		p("before_event"),
		p("after_event"),
		p("all_event_response"),
		p("all_space-time_cue"),
		p("all_time-space_cue"),
		p("average_event"),
		p("space_event"),
		p("time_event"),
		p("space-time_event"),
		p("time-space_event"),
		aMinusB,
		bMinusA,
		p("before-after_event"),
		p("after-before_event"),
	}

	return nuisanceFiltered(id, names, func(r *regressors) vectors {
		closeFar := func(what string) *mat.VecDense {
			return r.sum(p(what+"_close_event"), p(what+"_far_event"))
		}
		space, time := r.get(p("all_space_cue")), r.get(p("all_time_cue"))
		a, b := closeFar(sideA+"side"), closeFar(sideB+"side")
		before, after := closeFar("before"), closeFar("after")

		spaceTimeCue := sub(space, time)
		spaceEvent := sum(a, b)
		timeEvent := sum(before, after)
		spaceTimeEvent := sub(spaceEvent, timeEvent)
		sides := sub(a, b)
		beforeAfter := sub(before, after)

		return vectors{
			p("average_reference"):  r.get(p("all_reference")),
			p("all_space_cue"):      space,
			p("all_time_cue"):       time,
			aEvent:                  a,
			bEvent:                  b,
			p("before_event"):       before,
			p("after_event"):        after,
			p("all_event_response"): r.get(p("all_event_response")),
			p("all_space-time_cue"): spaceTimeCue,
			p("all_time-space_cue"): neg(spaceTimeCue),
			p("space_event"):        spaceEvent,
			p("time_event"):         timeEvent,
			p("average_event"):      sum(spaceEvent, timeEvent),
			p("space-time_event"):   spaceTimeEvent,
			p("time-space_event"):   neg(spaceTimeEvent),
			aMinusB:                 sides,
			bMinusA:                 neg(sides),
			p("before-after_event"): beforeAfter,
			p("after-before_event"): neg(beforeAfter),
		}
	})
}

var (
	mttWestEast   = mttRelative("MTTWE", "we", "west", "east")
	mttSouthNorth = mttRelative("MTTNS", "sn", "south", "north")
)

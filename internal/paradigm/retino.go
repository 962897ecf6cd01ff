package paradigm

var wedgeSectors = aliases("wedge",
	"lower_meridian", "lower_right", "right_meridian", "upper_right",
	"upper_meridian", "upper_left", "left_meridian", "lower_left")

var ringEccentricities = aliases("ring", "foveal", "middle", "peripheral")

// retino serves the phase-encoded runs. effects_interest is pinned to the
// cos/sin pair the phase mapping reads.
var retino = Entry{
	ID:       "retino",
	Names:    []string{"cos", "sin"},
	Interest: []string{"cos", "sin"},
	build: func(r *regressors) vectors {
		return vectors{"cos": r.get("cos"), "sin": r.get("sin")}
	},
}

// retinoRules are checked in order; the single-id families come first so
// the broad phase-encoded set does not capture them.
var retinoRules = []SetRule{
	{Members: []string{"wedge"}, Entry: wedgeSectors},
	{Members: []string{"ring"}, Entry: ringEccentricities},
	{Members: []string{"wedge", "wedge_anti", "wedge_clock", "ring", "cont_ring", "exp_ring"}, Entry: retino},
}

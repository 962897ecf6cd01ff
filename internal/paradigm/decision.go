package paradigm

// narps is the mixed gambles task
var narps = elementary("NARPS", []string{
	"gain", "loss", "weakly_accept", "weakly_reject",
	"strongly_accept", "strongly_reject",
	"reject-accept", "accept-reject",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out, "gain", "loss", "weakly_accept", "weakly_reject", "strongly_accept", "strongly_reject")
	rejectAccept := sub(
		r.sum("weakly_reject", "strongly_reject"),
		r.sum("weakly_accept", "strongly_accept"))
	out["reject-accept"] = rejectAccept
	out["accept-reject"] = neg(rejectAccept)
	return out
})

// rewardProcessing reads green and left as parametric modulators, so their
// contrasts against purple and right are the modulators themselves.
var rewardProcessing = elementary("RewProc", []string{
	"stim", "out_-20", "out_+20", "out_-10", "out_+10",
	"green-purple", "purple-green", "left-right", "right-left",
	"switch", "stay", "switch-stay", "stay-switch",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out, "stim", "out_-20", "out_+20", "out_-10", "out_+10", "switch", "stay")
	out["green-purple"] = r.get("green")
	out["purple-green"] = neg(r.get("green"))
	out["left-right"] = r.get("left")
	out["right-left"] = neg(r.get("left"))
	out["switch-stay"] = sub(r.get("switch"), r.get("stay"))
	out["stay-switch"] = sub(r.get("stay"), r.get("switch"))
	return out
})

var stopNogo = elementary("StopNogo", []string{
	"go", "nogo", "successful_stop", "unsuccessful_stop",
	"nogo-go", "unsuccessful-successful_stop",
	"successful+nogo-unsuccessful",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out, "go", "nogo", "successful_stop", "unsuccessful_stop")
	out["nogo-go"] = sub(r.get("nogo"), r.get("go"))
	out["unsuccessful-successful_stop"] = sub(r.get("unsuccessful_stop"), r.get("successful_stop"))
	out["successful+nogo-unsuccessful"] = sub(r.sum("successful_stop", "nogo"), r.get("unsuccessful_stop"))
	return out
})

// catell is the oddball task
var catell = pairwise("Catell", "hard", "easy")

var vstmc = elementary("VSTMC", []string{
	"stim_load1", "stim_load2", "stim_load3",
	"resp_load1", "resp_load2", "resp_load3",
	"stim", "resp", "stim_load3-load1",
	"resp_load3-load1",
}, func(r *regressors) vectors {
	out := vectors{}
	for _, phase := range []string{"stim", "resp"} {
		loads := []string{phase + "_load1", phase + "_load2", phase + "_load3"}
		r.alias(out, loads...)
		out[phase] = r.sum(loads...)
		out[phase+"_load3-load1"] = sub(r.get(loads[2]), r.get(loads[0]))
	}
	return out
})

var fingerTapping = elementary("FingerTapping", []string{
	"specified", "chosen", "null",
	"chosen-specified", "specified-null", "chosen-null",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out, "specified", "chosen", "null")
	out["chosen-specified"] = sub(r.get("chosen"), r.get("specified"))
	out["specified-null"] = sub(r.get("specified"), r.get("null"))
	out["chosen-null"] = sub(r.get("chosen"), r.get("null"))
	return out
})

// clipsTrain declares nothing; only the aggregates are produced
var clipsTrain = elementary("clips_trn", nil, func(r *regressors) vectors {
	return vectors{}
})

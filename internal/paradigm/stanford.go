package paradigm

// Stanford battery

var selectiveStopSignal = elementary("selective_stop_signal", []string{
	"go_critical", "go_noncritical", "stop", "ignore",
	"go_critical-stop", "go_noncritical-ignore",
	"stop-ignore", "ignore-stop",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out, "go_critical", "go_noncritical", "stop", "ignore")
	out["go_critical-stop"] = sub(r.get("go_critical"), r.get("stop"))
	out["go_noncritical-ignore"] = sub(r.get("go_noncritical"), r.get("ignore"))
	out["ignore-stop"] = sub(r.get("ignore"), r.get("stop"))
	out["stop-ignore"] = sub(r.get("stop"), r.get("ignore"))
	return out
})

var (
	stopSignal    = pairwise("stop_signal", "stop", "go")
	stroop        = pairwise("stroop", "incongruent", "congruent")
	discount      = aliases("discount", "delay", "amount")
	columbiaCards = aliases("columbia_cards", "num_loss_cards", "loss", "gain")
)

var attention = elementary("attention", []string{
	"spatial_cue-double_cue",
	"spatial_cue", "double_cue",
	"incongruent-congruent", "spatial_incongruent-spatial_congruent",
	"double_incongruent-double_congruent", "spatial_incongruent",
	"double_congruent", "spatial_congruent",
	"double_incongruent",
}, func(r *regressors) vectors {
	out := vectors{
		"spatial_cue":            r.get("spatialcue"),
		"double_cue":             r.get("doublecue"),
		"spatial_cue-double_cue": sub(r.get("spatialcue"), r.get("doublecue")),
	}
	r.alias(out, "spatial_incongruent", "spatial_congruent", "double_incongruent", "double_congruent")
	spatial := sub(r.get("spatial_incongruent"), r.get("spatial_congruent"))
	double := sub(r.get("double_incongruent"), r.get("double_congruent"))
	out["spatial_incongruent-spatial_congruent"] = spatial
	out["double_incongruent-double_congruent"] = double
	out["incongruent-congruent"] = sum(spatial, double)
	return out
})

// towerTask is the Ward and Allport tower of London variant
var towerTask = elementary("ward_and_aliport", []string{
	"planning_ambiguous_intermediate",
	"planning_ambiguous_direct",
	"planning_unambiguous_intermediate",
	"planning_unambiguous_direct",
	"move_ambiguous_intermediate",
	"move_ambiguous_direct",
	"move_unambiguous_intermediate",
	"move_unambiguous_direct",
	"intermediate-direct",
	"ambiguous-unambiguous",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out,
		"planning_ambiguous_intermediate", "planning_ambiguous_direct",
		"planning_unambiguous_intermediate", "planning_unambiguous_direct",
		"move_ambiguous_intermediate", "move_ambiguous_direct",
		"move_unambiguous_intermediate", "move_unambiguous_direct")
	out["intermediate-direct"] = sub(
		r.sum("planning_ambiguous_intermediate", "planning_unambiguous_intermediate"),
		r.sum("planning_ambiguous_direct", "planning_unambiguous_direct"))
	out["ambiguous-unambiguous"] = sub(
		r.sum("planning_ambiguous_intermediate", "planning_ambiguous_direct"),
		r.sum("planning_unambiguous_intermediate", "planning_unambiguous_direct"))
	return out
})

var twoByTwo = elementary("two_by_two", []string{
	"cue_taskstay_cuestay",
	"cue_taskstay_cueswitch",
	"cue_taskswitch_cuestay",
	"cue_taskswitch_cueswitch",
	"stim_taskstay_cuestay",
	"stim_taskstay_cueswitch",
	"stim_taskswitch_cuestay",
	"stim_taskswitch_cueswitch",
	"task_swtich-stay",
	"cue_switch",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out,
		"cue_taskstay_cuestay", "cue_taskstay_cueswitch",
		"cue_taskswitch_cuestay", "cue_taskswitch_cueswitch",
		"stim_taskstay_cuestay", "stim_taskstay_cueswitch",
		"stim_taskswitch_cuestay", "stim_taskswitch_cueswitch")
	// the misspelt name is what downstream analyses look up
	out["task_swtich-stay"] = sub(
		r.sum("cue_taskswitch_cueswitch", "cue_taskswitch_cuestay"),
		r.sum("cue_taskstay_cueswitch", "cue_taskstay_cuestay"))
	out["cue_switch"] = sub(r.get("cue_taskstay_cueswitch"), r.get("cue_taskstay_cuestay"))
	return out
})

var dotPatterns = elementary("dot_patterns", []string{
	"cue",
	"correct_cue_correct_probe",
	"correct_cue_incorrect_probe",
	"incorrect_cue_correct_probe",
	"incorrect_cue_incorrect_probe",
	"correct_cue_incorrect_probe-correct_cue_correct_probe",
	"incorrect_cue_incorrect_probe-incorrect_cue_correct_probe",
	"correct_cue_incorrect_probe-incorrect_cue_correct_probe",
	"incorrect_cue_incorrect_probe-correct_cue_incorrect_probe",
	"correct_cue-incorrect_cue",
	"incorrect_probe-correct_probe",
}, func(r *regressors) vectors {
	cc := r.get("correct_cue_correct_probe")
	ci := r.get("correct_cue_incorrect_probe")
	ic := r.get("incorrect_cue_correct_probe")
	ii := r.get("incorrect_cue_incorrect_probe")
	return vectors{
		"cue":                           r.get("cue"),
		"correct_cue_correct_probe":     cc,
		"correct_cue_incorrect_probe":   ci,
		"incorrect_cue_correct_probe":   ic,
		"incorrect_cue_incorrect_probe": ii,

		"correct_cue_incorrect_probe-correct_cue_correct_probe":     sub(ci, cc),
		"incorrect_cue_incorrect_probe-incorrect_cue_correct_probe": sub(ii, ic),
		"correct_cue_incorrect_probe-incorrect_cue_correct_probe":   sub(ci, ic),
		"incorrect_cue_incorrect_probe-correct_cue_incorrect_probe": sub(ii, ci),
		"correct_cue-incorrect_cue":                                 sub(sum(cc, ci), sum(ic, ii)),
		"incorrect_probe-correct_probe":                             sub(sum(ci, ii), sum(cc, ic)),
	}
})

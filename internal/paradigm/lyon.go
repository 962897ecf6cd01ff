package paradigm

import (
	"gocontrast/domain/contrast"
)

var lyonMoto = elementary("lyon_moto", []string{
	"instructions", "finger_right-fixation", "finger_left-fixation",
	"foot_left-fixation", "foot_right-fixation", "hand_left-fixation",
	"hand_right-fixation", "saccade-fixation", "tongue-fixation",
}, func(r *regressors) vectors {
	fixation := r.mean("fixation_left", "fixation_right")
	out := vectors{"instructions": r.get("instructions")}
	for _, e := range []string{"finger_right", "finger_left", "foot_left", "foot_right", "hand_left", "hand_right"} {
		out[e+"-fixation"] = sub(r.get(e), fixation)
	}
	// bilateral effectors against both fixation blocks
	out["saccade-fixation"] = contrast.Combine(
		contrast.W(1, r.sum("saccade_left", "saccade_right")), contrast.W(-2, fixation))
	out["tongue-fixation"] = contrast.Combine(
		contrast.W(1, r.sum("tongue_left", "tongue_right")), contrast.W(-2, fixation))
	return out
})

var lyonMCSE = elementary("lyon_mcse", []string{
	"high_salience_left", "high_salience_right",
	"low_salience_left", "low_salience_right",
	"high-low_salience", "low-high_salience",
	"salience_left-right", "salience_right-left",
	"low+high_salience",
}, func(r *regressors) vectors {
	hiL, hiR := r.get("hi_salience_left"), r.get("hi_salience_right")
	loL, loR := r.get("low_salience_left"), r.get("low_salience_right")
	highLow := sub(sum(hiL, hiR), sum(loL, loR))
	leftRight := sub(sum(hiL, loL), sum(hiR, loR))
	return vectors{
		"high_salience_left":  hiL,
		"high_salience_right": hiR,
		"low_salience_left":   loL,
		"low_salience_right":  loR,
		"high-low_salience":   highLow,
		"low-high_salience":   neg(highLow),
		"salience_left-right": leftRight,
		"salience_right-left": neg(leftRight),
		"low+high_salience":   sum(hiL, hiR, loL, loR),
	}
})

var lyonMVEB = elementary("lyon_mveb", []string{
	"letter_occurrence_response", "2_letters_different", "2_letters_same",
	"4_letters_different", "4_letters_same",
	"6_letters_different", "6_letters_same",
	"2_letters_different-same",
	"4_letters_different-same", "6_letters_different-same",
	"6_letters_different-2_letters_different",
}, func(r *regressors) vectors {
	out := vectors{"letter_occurrence_response": r.get("response")}
	for _, n := range []string{"2", "4", "6"} {
		different, same := n+"_letters_different", n+"_letters_same"
		r.alias(out, different, same)
		out[different+"-same"] = sub(r.get(different), r.get(same))
	}
	out["6_letters_different-2_letters_different"] = sub(r.get("6_letters_different"), r.get("2_letters_different"))
	return out
})

var lyonMVIS = elementary("lyon_mvis", []string{
	"dot_displacement_response",
	"2_dots-2_dots_control", "4_dots-4_dots_control",
	"6_dots-6_dots_control", "6_dots-2_dots", "dots-control",
}, func(r *regressors) vectors {
	out := vectors{"dot_displacement_response": r.get("response")}
	for _, n := range []string{"2", "4", "6"} {
		dots := n + "_dots"
		out[dots+"-"+dots+"_control"] = sub(r.get(dots), r.get(dots+"_control"))
	}
	out["6_dots-2_dots"] = sub(r.get("6_dots"), r.get("2_dots"))
	out["dots-control"] = sub(
		r.sum("6_dots", "4_dots", "2_dots"),
		r.sum("2_dots_control", "6_dots_control", "4_dots_control"))
	return out
})

var lyonLec1 = elementary("lyon_lec1", []string{
	"pseudoword", "word", "random_string", "word-pseudoword",
	"word-random_string", "pseudoword-random_string",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out, "pseudoword", "word", "random_string")
	out["word-pseudoword"] = sub(r.get("word"), r.get("pseudoword"))
	out["word-random_string"] = sub(r.get("word"), r.get("random_string"))
	out["pseudoword-random_string"] = sub(r.get("pseudoword"), r.get("random_string"))
	return out
})

var lyonLec2 = pairwise("lyon_lec2", "attend", "unattend")

var lyonAudi = againstBaseline("lyon_audi", "silence", []string{
	"tear", "suomi", "yawn", "human", "music",
	"reverse", "speech", "alphabet", "cough", "environment",
	"laugh", "animals",
}, nil)

var lyonVisu = againstBaseline("lyon_visu", "scrambled", []string{
	"scene", "tool", "face", "house", "animal", "characters", "pseudoword",
}, []string{"target_fruit"})

// againstBaseline aliases every condition and the baseline and contrasts each
// condition with the baseline. Extra regressors are aliased only.
func againstBaseline(id, baseline string, conditions, extra []string) Entry {
	names := append([]string{baseline}, conditions...)
	names = append(names, extra...)
	for _, c := range conditions {
		names = append(names, c+"-"+baseline)
	}
	return elementary(id, names, func(r *regressors) vectors {
		out := vectors{}
		r.alias(out, baseline)
		r.alias(out, conditions...)
		r.alias(out, extra...)
		for _, c := range conditions {
			out[c+"-"+baseline] = sub(r.get(c), r.get(baseline))
		}
		return out
	})
}

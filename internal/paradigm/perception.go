package paradigm

import (
	"strings"

	"gocontrast/domain/contrast"
)

var colour = pairwise("colour", "color", "grey")

var audioCategories = []string{"animal", "music", "nature", "speech", "tool", "voice"}

// audio compares each sound category with "others": the sum of all six
// categories scaled by 1/5.
var audio = elementary("audio", func() []string {
	names := append([]string(nil), audioCategories...)
	for _, c := range audioCategories {
		names = append(names, c+"-others")
	}
	names = append(names, "mean-silence")
	for _, c := range audioCategories {
		names = append(names, c+"-silence")
	}
	return names
}(), func(r *regressors) vectors {
	others := scale(1.0/5, r.sum(audioCategories...))
	silence := r.get("silence")
	out := vectors{"mean-silence": sub(others, silence)}
	r.alias(out, audioCategories...)
	for _, c := range audioCategories {
		out[c+"-others"] = sub(r.get(c), others)
		out[c+"-silence"] = sub(r.get(c), silence)
	}
	return out
})

var faceBodyCategories = [][2]string{
	{"bodies_body", "bodies_limb"},
	{"characters_number", "characters_word"},
	{"faces_adult", "faces_child"},
	{"objects_car", "objects_instrument"},
	{"places_corridor", "places_house"},
}

var faceBody = elementary("FaceBody", []string{
	"bodies_body", "bodies_limb",
	"characters_number", "characters_word",
	"faces_adult", "faces_child",
	"objects_car", "objects_instrument",
	"places_corridor", "places_house",
	"bodies-others", "characters-others", "faces-others",
	"objects-others", "places-others",
}, func(r *regressors) vectors {
	out := vectors{}
	var all []string
	for _, pair := range faceBodyCategories {
		r.alias(out, pair[0], pair[1])
		all = append(all, pair[0], pair[1])
	}
	total := r.sum(all...)
	for _, pair := range faceBodyCategories {
		category, _, _ := strings.Cut(pair[0], "_")
		out[category+"-others"] = contrast.Combine(
			contrast.W(5, r.sum(pair[0], pair[1])), contrast.W(-1, total))
	}
	return out
})

var scenes = elementary("Scene", []string{
	"dot_easy_left", "dot_easy_right", "dot_hard_left", "dot_hard_right",
	"scene_impossible_correct", "scene_impossible_incorrect",
	"scene_possible_correct", "scene_possible_incorrect",
	"scene_possible_correct-scene_impossible_correct",
	"scene_correct-dot_correct",
	"dot_left-right",
	"dot_hard-easy",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out,
		"dot_easy_left", "dot_easy_right", "dot_hard_left", "dot_hard_right",
		"scene_impossible_correct", "scene_impossible_incorrect",
		"scene_possible_correct", "scene_possible_incorrect")
	out["scene_possible_correct-scene_impossible_correct"] = sub(
		r.get("scene_possible_correct"), r.get("scene_impossible_correct"))
	// correct minus incorrect scene judgements
	out["scene_correct-dot_correct"] = sub(
		r.sum("scene_impossible_correct", "scene_possible_correct"),
		r.sum("scene_impossible_incorrect", "scene_possible_incorrect"))
	out["dot_left-right"] = sub(
		r.sum("dot_easy_left", "dot_hard_left"),
		r.sum("dot_easy_right", "dot_hard_right"))
	out["dot_hard-easy"] = sub(
		r.sum("dot_hard_left", "dot_hard_right"),
		r.sum("dot_easy_left", "dot_easy_right"))
	return out
})

// biologicalMotion covers both runs: natural point-light walkers against a
// second stimulus family, each shown upright and inverted. The family
// comparison is from minus to.
func biologicalMotion(id, family, from, to string) Entry {
	upright, inverted := family+"_upright", family+"_inverted"
	versus := from + " - " + to
	names := []string{
		upright, inverted, "natural_upright", "natural_inverted",
		versus,
		upright + " - " + inverted,
		"natural_upright - natural_inverted",
	}
	return elementary(id, names, func(r *regressors) vectors {
		out := vectors{}
		r.alias(out, upright, inverted, "natural_upright", "natural_inverted")
		out[versus] = sub(r.get(from), r.get(to))
		out[upright+" - "+inverted] = sub(r.get(upright), r.get(inverted))
		out["natural_upright - natural_inverted"] = sub(r.get("natural_upright"), r.get("natural_inverted"))
		return out
	})
}

var (
	biologicalMotion1 = biologicalMotion("biological_motion1", "global", "global_upright", "natural_upright")
	biologicalMotion2 = biologicalMotion("biological_motion2", "modified", "natural_upright", "modified_upright")
)

var spatialNavigation = elementary("spatial_navigation", []string{
	"experimental-intersection", "experimental-control", "encoding_phase",
	"intersection", "retrieval", "control", "pointing_control",
	"experimental", "pointing_experimental", "navigation",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out, "encoding_phase", "navigation", "experimental", "pointing_experimental",
		"control", "pointing_control", "intersection")
	out["experimental-control"] = sub(r.get("experimental"), r.get("control"))
	out["retrieval"] = sub(
		r.sum("experimental", "pointing_experimental"),
		r.sum("control", "pointing_control"))
	out["experimental-intersection"] = sub(r.get("experimental"), r.get("intersection"))
	return out
})

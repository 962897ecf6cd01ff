package paradigm

// selfLocalizer tolerates runs where some recognition outcomes never
// occurred: each logical quantity falls back through alternative regressors.
var selfLocalizer = elementary("self", []string{
	"encode_self-other", "encode_other", "encode_self",
	"instructions", "false_alarm", "correct_rejection",
	"recognition_hit", "recognition_hit-correct_rejection",
	"recognition_self-other", "recognition_self_hit",
	"recognition_other_hit",
}, func(r *regressors) vectors {
	const (
		selfHit   = "recognition_self_hit"
		selfMiss  = "recognition_self_miss"
		otherHit  = "recognition_other_hit"
		otherMiss = "recognition_other_miss"
	)
	hit := r.first("recognition_hit",
		[]string{otherHit, selfHit}, []string{selfHit}, []string{otherHit},
		[]string{"recognition_other_no_response"})
	rejection := r.first("correct_rejection",
		[]string{"correct_rejection"}, []string{"false_alarm"})
	self := r.first("recognition_self",
		[]string{selfHit, selfMiss}, []string{selfMiss}, []string{selfHit})
	other := r.first("recognition_other",
		[]string{otherHit, otherMiss}, []string{otherHit}, []string{otherMiss})

	return vectors{
		"encode_self-other":                 sub(r.get("encode_self"), r.get("encode_other")),
		"encode_other":                      r.get("encode_other"),
		"encode_self":                       r.get("encode_self"),
		"instructions":                      r.get("instructions"),
		"false_alarm":                       r.get("false_alarm"),
		"correct_rejection":                 rejection,
		"recognition_hit":                   hit,
		"recognition_hit-correct_rejection": sub(hit, rejection),
		"recognition_self-other":            sub(self, other),
		"recognition_self_hit":              r.first("recognition_self_hit", []string{selfHit}, []string{selfMiss}),
		"recognition_other_hit":             r.first("recognition_other_hit", []string{otherHit}, []string{otherMiss}),
	}
})

var theoryOfMind = pairwise("theory_of_mind", "belief", "photo")

var emotionalPain = elementary("emotional_pain", []string{
	"physical_pain", "emotional_pain", "emotional-physical_pain",
}, func(r *regressors) vectors {
	return vectors{
		"emotional_pain":          r.get("emotional_pain"),
		"physical_pain":           r.get("physical_pain"),
		"emotional-physical_pain": sub(r.get("emotional_pain"), r.get("physical_pain")),
	}
})

var painMovie = elementary("pain_movie", []string{
	"movie_pain", "movie_mental", "movie_mental-pain",
}, func(r *regressors) vectors {
	return vectors{
		"movie_pain":        r.get("pain"),
		"movie_mental":      r.get("mental"),
		"movie_mental-pain": sub(r.get("mental"), r.get("pain")),
	}
})

var bang = pairwise("bang", "talk", "no_talk")

var emotionalMemory = elementary("EmoMem", []string{
	"neutral_image", "negative_image", "positive_image", "object",
	"positive-neutral_image", "negative-neutral_image",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out, "neutral_image", "negative_image", "positive_image", "object")
	out["positive-neutral_image"] = sub(r.get("positive_image"), r.get("neutral_image"))
	out["negative-neutral_image"] = sub(r.get("negative_image"), r.get("neutral_image"))
	return out
})

var emotionRecognition = elementary("EmoReco", []string{
	"neutral_male", "angry_male", "neutral_female", "angry_female",
	"neutral", "angry", "angry-neutral", "neutral-angry", "male-female",
	"female-male",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out, "neutral_male", "angry_male", "neutral_female", "angry_female")
	neutral := r.sum("neutral_male", "neutral_female")
	angry := r.sum("angry_male", "angry_female")
	male := r.sum("neutral_male", "angry_male")
	female := r.sum("neutral_female", "angry_female")
	out["neutral"] = neutral
	out["angry"] = angry
	out["angry-neutral"] = sub(angry, neutral)
	out["neutral-angry"] = sub(neutral, angry)
	out["male-female"] = sub(male, female)
	out["female-male"] = sub(female, male)
	return out
})

package paradigm

import (
	"gocontrast/domain/contrast"

	"gonum.org/v1/gonum/mat"
)

// rsvpLanguage is the RSVP language localizer
var rsvpLanguage = elementary("language", []string{
	"complex", "simple", "jabberwocky", "word_list",
	"pseudoword_list", "consonant_string", "complex-simple",
	"sentence-jabberwocky", "sentence-word",
	"word-consonant_string", "jabberwocky-pseudo",
	"word-pseudo", "pseudo-consonant_string",
	"sentence-consonant_string", "simple-consonant_string",
	"complex-consonant_string", "sentence-pseudo", "probe",
	"jabberwocky-consonant_string",
}, func(r *regressors) vectors {
	complexS := r.get("complex_sentence")
	simple := r.get("simple_sentence")
	jabberwocky := r.get("jabberwocky")
	words := r.get("word_list")
	pseudo := r.get("pseudoword_list")
	consonants := r.get("consonant_strings")
	sentence := sum(complexS, simple)

	// sentence minus twice a baseline condition
	versus := func(baseline *mat.VecDense) *mat.VecDense {
		return contrast.Combine(contrast.W(1, sentence), contrast.W(-2, baseline))
	}

	return vectors{
		"complex":                      complexS,
		"simple":                       simple,
		"probe":                        r.get("probe"),
		"jabberwocky":                  jabberwocky,
		"word_list":                    words,
		"pseudoword_list":              pseudo,
		"consonant_string":             consonants,
		"complex-simple":               sub(complexS, simple),
		"sentence-jabberwocky":         versus(jabberwocky),
		"sentence-word":                versus(words),
		"sentence-pseudo":              versus(pseudo),
		"sentence-consonant_string":    versus(consonants),
		"word-consonant_string":        sub(words, consonants),
		"jabberwocky-pseudo":           sub(jabberwocky, pseudo),
		"jabberwocky-consonant_string": sub(jabberwocky, consonants),
		"word-pseudo":                  sub(words, pseudo),
		"pseudo-consonant_string":      sub(pseudo, consonants),
		"simple-consonant_string":      sub(simple, consonants),
		"complex-consonant_string":     sub(complexS, consonants),
	}
})

var mathLanguage = elementary("mathlang", []string{
	"colorlessg_auditory", "colorlessg_visual",
	"wordlist_auditory", "wordlist_visual",
	"arithmetic_fact_auditory", "arithmetic_fact_visual",
	"arithmetic_principle_auditory", "arithmetic_principle_visual",
	"theory_of_mind_auditory", "theory_of_mind_visual",
	"geometry_fact_auditory", "geometry_fact_visual",
	"general_auditory", "general_visual",
	"context_auditory", "context_visual",
	"visual-auditory", "auditory-visual",
	"colorlessg-wordlist",
	"general-colorlessg",
	"math-nonmath", "nonmath-math",
	"geometry-othermath",
	"arithmetic_principle-othermath",
	"arithmetic_fact-othermath",
	"theory_of_mind-general", "context-general", "theory_of_mind-context",
	"context-theory_of_mind",
	"theory_of_mind_and_context-general",
}, func(r *regressors) vectors {
	conditions := []string{
		"colorlessg", "wordlist", "arithmetic_fact", "arithmetic_principle",
		"theory_of_mind", "geometry_fact", "general", "context",
	}
	out := vectors{}
	var auditory, visual []string
	for _, c := range conditions {
		auditory = append(auditory, c+"_auditory")
		visual = append(visual, c+"_visual")
	}
	r.alias(out, auditory...)
	r.alias(out, visual...)

	// both modalities of one condition
	both := func(c string) *mat.VecDense {
		return r.sum(c+"_auditory", c+"_visual")
	}
	colorless, wordlist := both("colorlessg"), both("wordlist")
	fact, principle, geometry := both("arithmetic_fact"), both("arithmetic_principle"), both("geometry_fact")
	tom, general, context := both("theory_of_mind"), both("general"), both("context")

	// a math condition against the mean of the other two
	othermath := func(target, a, b *mat.VecDense) *mat.VecDense {
		return contrast.Combine(contrast.W(1, target), contrast.W(-0.5, a), contrast.W(-0.5, b))
	}

	av := sub(r.sum(auditory...), r.sum(visual...))
	math := sub(sum(fact, principle, geometry), sum(tom, context, general))
	tomContext := sub(tom, context)

	out["auditory-visual"] = av
	out["visual-auditory"] = neg(av)
	out["colorlessg-wordlist"] = sub(colorless, wordlist)
	out["general-colorlessg"] = sub(general, colorless)
	out["math-nonmath"] = math
	out["nonmath-math"] = neg(math)
	out["geometry-othermath"] = othermath(geometry, fact, principle)
	out["arithmetic_principle-othermath"] = othermath(principle, fact, geometry)
	out["arithmetic_fact-othermath"] = othermath(fact, geometry, principle)
	out["theory_of_mind-general"] = sub(tom, general)
	out["context-general"] = sub(context, general)
	out["theory_of_mind-context"] = tomContext
	out["context-theory_of_mind"] = neg(tomContext)
	out["theory_of_mind_and_context-general"] = sub(scale(0.5, sum(tom, context)), general)
	return out
})

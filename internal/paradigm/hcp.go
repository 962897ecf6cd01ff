package paradigm

// HCP event files capitalise condition names ("Face", "Shape"), so every HCP
// builder reads a case-folded basis.

// hcpPair covers the HCP tasks made of two conditions and their differences
func hcpPair(id, a, b string, reverse bool) Entry {
	names := []string{a, b, a + "-" + b}
	if reverse {
		names = append(names, b+"-"+a)
	}
	return caseFolded(id, names, func(r *regressors) vectors {
		out := vectors{}
		r.alias(out, a, b)
		out[a+"-"+b] = sub(r.get(a), r.get(b))
		if reverse {
			out[b+"-"+a] = sub(r.get(b), r.get(a))
		}
		return out
	})
}

var (
	hcpEmotion  = hcpPair("hcp_emotion", "face", "shape", true)
	hcpGambling = hcpPair("hcp_gambling", "punishment", "reward", true)
	hcpLanguage = hcpPair("hcp_language", "math", "story", true)
	hcpSocial   = hcpPair("hcp_social", "mental", "random", false)
)

var hcpMotor = caseFolded("hcp_motor", []string{
	"left_hand", "right_hand", "left_foot", "right_foot",
	"tongue", "tongue-avg", "left_hand-avg", "right_hand-avg",
	"left_foot-avg", "right_foot-avg", "cue",
}, func(r *regressors) vectors {
	effectors := []string{"left_hand", "right_hand", "left_foot", "right_foot", "tongue"}
	avg := r.mean(effectors...)
	out := vectors{}
	r.alias(out, "cue")
	r.alias(out, effectors...)
	for _, e := range effectors {
		out[e+"-avg"] = sub(r.get(e), avg)
	}
	return out
})

var hcpRelational = caseFolded("hcp_relational", []string{
	"relational", "relational-match", "match",
}, func(r *regressors) vectors {
	return vectors{
		"match":            r.get("control"),
		"relational":       r.get("relational"),
		"relational-match": sub(r.get("relational"), r.get("control")),
	}
})

var hcpWM = caseFolded("hcp_wm", []string{
	"2back-0back", "0back-2back", "body-avg",
	"face-avg", "place-avg", "tools-avg",
	"0back_body", "2back_body", "0back_face", "2back_face",
	"0back_tools", "2back_tools", "0back_place", "2back_place",
}, func(r *regressors) vectors {
	categories := []string{"body", "face", "place", "tools"}
	out := vectors{}
	var back0, back2 []string
	for _, c := range categories {
		back0 = append(back0, "0back_"+c)
		back2 = append(back2, "2back_"+c)
	}
	r.alias(out, back0...)
	r.alias(out, back2...)

	zero, two := r.sum(back0...), r.sum(back2...)
	average := scale(1.0/8, sum(two, zero))
	out["2back-0back"] = sub(two, zero)
	out["0back-2back"] = sub(zero, two)
	for _, c := range categories {
		out[c+"-avg"] = sub(r.mean("2back_"+c, "0back_"+c), average)
	}
	return out
})

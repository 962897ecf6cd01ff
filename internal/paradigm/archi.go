package paradigm

var archiStandard = elementary("archi_standard", []string{
	"audio_left_button_press", "audio_right_button_press",
	"video_left_button_press", "video_right_button_press",
	"left-right_button_press", "right-left_button_press",
	"listening-reading", "reading-listening",
	"motor-cognitive", "cognitive-motor", "reading-checkerboard",
	"horizontal-vertical", "vertical-horizontal",
	"horizontal_checkerboard", "vertical_checkerboard",
	"audio_sentence", "video_sentence",
	"audio_computation", "video_computation",
	"sentences", "computation",
	"computation-sentences", "sentences-computation",
}, func(r *regressors) vectors {
	out := vectors{
		"audio_left_button_press":  r.get("audio_left_hand"),
		"audio_right_button_press": r.get("audio_right_hand"),
		"video_left_button_press":  r.get("video_left_hand"),
		"video_right_button_press": r.get("video_right_hand"),
	}
	r.alias(out, "horizontal_checkerboard", "vertical_checkerboard",
		"audio_sentence", "video_sentence", "audio_computation", "video_computation")

	audio := r.sum("audio_left_hand", "audio_right_hand", "audio_computation", "audio_sentence")
	video := r.sum("video_left_hand", "video_right_hand", "video_computation", "video_sentence")
	left := r.sum("audio_left_hand", "video_left_hand")
	right := r.sum("audio_right_hand", "video_right_hand")
	computation := r.sum("audio_computation", "video_computation")
	sentences := r.sum("audio_sentence", "video_sentence")
	hv := sub(r.get("horizontal_checkerboard"), r.get("vertical_checkerboard"))
	motor := sub(sum(left, right), sum(computation, sentences))

	out["computation"] = computation
	out["sentences"] = sentences
	out["horizontal-vertical"] = hv
	out["vertical-horizontal"] = neg(hv)
	out["left-right_button_press"] = sub(left, right)
	out["right-left_button_press"] = sub(right, left)
	out["motor-cognitive"] = motor
	out["cognitive-motor"] = neg(motor)
	out["listening-reading"] = sub(audio, video)
	out["reading-listening"] = sub(video, audio)
	out["computation-sentences"] = sub(computation, sentences)
	out["sentences-computation"] = sub(sentences, computation)
	out["reading-checkerboard"] = sub(r.get("video_sentence"), r.get("horizontal_checkerboard"))
	return out
})

var archiSocial = elementary("archi_social", []string{
	"triangle_mental-random", "false_belief-mechanistic_audio",
	"mechanistic_audio", "false_belief-mechanistic_video",
	"mechanistic_video", "false_belief-mechanistic",
	"speech-non_speech", "triangle_mental", "triangle_random",
	"false_belief_audio", "false_belief_video",
	"speech_sound", "non_speech_sound",
}, func(r *regressors) vectors {
	out := vectors{
		"triangle_mental":  r.get("triangle_intention"),
		"speech_sound":     r.get("speech"),
		"non_speech_sound": r.get("non_speech"),
	}
	r.alias(out, "triangle_random", "false_belief_audio", "mechanistic_audio",
		"false_belief_video", "mechanistic_video")

	fbAudio := sub(r.get("false_belief_audio"), r.get("mechanistic_audio"))
	fbVideo := sub(r.get("false_belief_video"), r.get("mechanistic_video"))
	out["triangle_mental-random"] = sub(r.get("triangle_intention"), r.get("triangle_random"))
	out["false_belief-mechanistic_audio"] = fbAudio
	out["false_belief-mechanistic_video"] = fbVideo
	out["false_belief-mechanistic"] = sum(fbAudio, fbVideo)
	out["speech-non_speech"] = sub(r.get("speech"), r.get("non_speech"))
	return out
})

var archiSpatial = elementary("archi_spatial", []string{
	"saccades", "rotation_hand", "rotation_side", "object_grasp",
	"object_orientation", "hand-side", "grasp-orientation",
}, func(r *regressors) vectors {
	out := vectors{"saccades": r.get("saccade")}
	r.alias(out, "rotation_hand", "rotation_side", "object_grasp", "object_orientation")
	out["hand-side"] = sub(r.get("rotation_hand"), r.get("rotation_side"))
	out["grasp-orientation"] = sub(r.get("object_grasp"), r.get("object_orientation"))
	return out
})

var archiEmotional = elementary("archi_emotional", []string{
	"face_gender", "face_control", "face_trusty",
	"expression_intention", "expression_gender", "expression_control",
	"trusty_and_intention-control", "trusty_and_intention-gender",
	"expression_gender-control", "expression_intention-control",
	"expression_intention-gender", "face_trusty-control",
	"face_gender-control", "face_trusty-gender",
}, func(r *regressors) vectors {
	out := vectors{}
	r.alias(out, "face_gender", "face_control", "face_trusty",
		"expression_intention", "expression_gender", "expression_control")

	trustyGender := sub(r.get("face_trusty"), r.get("face_gender"))
	trustyControl := sub(r.get("face_trusty"), r.get("face_control"))
	intentionGender := sub(r.get("expression_intention"), r.get("expression_gender"))
	intentionControl := sub(r.get("expression_intention"), r.get("expression_control"))

	out["face_trusty-gender"] = trustyGender
	out["face_gender-control"] = sub(r.get("face_gender"), r.get("face_control"))
	out["face_trusty-control"] = trustyControl
	out["expression_intention-gender"] = intentionGender
	out["expression_intention-control"] = intentionControl
	out["expression_gender-control"] = sub(r.get("expression_gender"), r.get("expression_control"))
	out["trusty_and_intention-gender"] = sum(trustyGender, intentionGender)
	out["trusty_and_intention-control"] = sum(trustyControl, intentionControl)
	return out
})

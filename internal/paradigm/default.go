package paradigm

import "sync"

// exactEntries in catalog order
func exactEntries() []Entry {
	return []Entry{
		archiStandard, archiSocial, archiSpatial, archiEmotional,
		hcpEmotion, hcpGambling, hcpLanguage, hcpMotor, hcpWM, hcpRelational, hcpSocial,
		rsvpLanguage, colour, mttWestEast, mttSouthNorth,
		emotionalPain, painMovie, theoryOfMind, vstm, enumeration, clipsTrain, selfLocalizer,
		lyonMoto, lyonMCSE, lyonMVEB, lyonMVIS, lyonLec1, lyonLec2, lyonAudi, lyonVisu,
		audio, bang, selectiveStopSignal, stopSignal, stroop, discount, attention,
		towerTask, twoByTwo, columbiaCards, dotPatterns,
		biologicalMotion1, biologicalMotion2, mathLanguage, spatialNavigation,
		emotionalMemory, emotionRecognition, stopNogo, catell, vstmc, fingerTapping,
		rewardProcessing, narps, faceBody, scenes,
	}
}

var defaultRegistry = sync.OnceValues(func() (*Registry, error) {
	return NewRegistry(exactEntries(), []PrefixRule{preferenceRule}, retinoRules)
})

// Default returns the built-in registry, constructed and validated once.
// An error here means the built-in tables are inconsistent.
func Default() (*Registry, error) {
	return defaultRegistry()
}

// Package content implements the generation core: resolving a complete
// content brief from user input (Lite or Expert mode) and assembling a
// typed content package from one generator call.
package content

import (
	"fmt"
	"strings"

	"github.com/minsu-oh/hallabong/internal/models"
)

// Input carries the raw form values for one configuration request. In Lite
// mode only Topic, Keywords, Platform, and Tone are consulted; the rest is
// derived from the platform default table. In Expert mode every field is
// taken as-is.
type Input struct {
	Topic    string
	Keywords string // comma-separated
	Platform models.Platform
	Tone     models.Tone

	ContentType    models.ContentType
	ParagraphCount int
	DesignConcept  models.DesignConcept
	TargetPersona  models.TargetPersona
	Addons         []models.Addon
}

// Defaults is the derived half of a Lite-mode brief.
type Defaults struct {
	ContentType    models.ContentType
	ParagraphCount int
	DesignConcept  models.DesignConcept
	TargetPersona  models.TargetPersona
	Addons         []models.Addon
}

// liteDefaultTable maps every platform to a complete default set. The table
// must stay total: a platform value without an entry breaks Lite mode, and
// the exhaustive coverage test guards that. For Shorts the paragraph count
// is the fixed scene count of the script.
var liteDefaultTable = map[models.Platform]Defaults{
	models.PlatformNaverCardNews: {
		ContentType:    models.ContentInformation,
		ParagraphCount: 6,
		DesignConcept:  models.DesignTypoCard,
		TargetPersona:  models.PersonaGeneralStandard,
		Addons:         []models.Addon{models.AddonSummaryTable},
	},
	models.PlatformNaverOfficial: {
		ContentType:    models.ContentGuide,
		ParagraphCount: 8,
		DesignConcept:  models.DesignSimpleIllust,
		TargetPersona:  models.PersonaBeginnerOwner,
		Addons:         []models.Addon{models.AddonChecklist, models.AddonTips},
	},
	models.PlatformOrganicBlog: {
		ContentType:    models.ContentInformation,
		ParagraphCount: 10,
		DesignConcept:  models.DesignWebCapture,
		TargetPersona:  models.PersonaManager,
		Addons:         []models.Addon{models.AddonQnA, models.AddonRealCase},
	},
	models.PlatformTistory: {
		ContentType:    models.ContentReview,
		ParagraphCount: 9,
		DesignConcept:  models.DesignDeviceCloseup,
		TargetPersona:  models.PersonaGeneralStandard,
		Addons:         []models.Addon{models.AddonComparison, models.AddonTips},
	},
	models.PlatformShorts: {
		ContentType:    models.ContentIssue,
		ParagraphCount: 5,
		DesignConcept:  models.DesignSimpleIllust,
		TargetPersona:  models.PersonaGeneralStandard,
		Addons:         []models.Addon{},
	},
}

// LiteDefaults returns the fixed Lite-mode default set for a platform.
func LiteDefaults(platform models.Platform) (Defaults, bool) {
	d, ok := liteDefaultTable[platform]
	return d, ok
}

// ParseKeywords splits a comma-separated keyword string, trimming each
// segment and dropping empty ones. If nothing survives, the topic itself
// becomes the single keyword so the brief is never keyword-less.
func ParseKeywords(raw, topic string) []string {
	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	if len(keywords) == 0 {
		return []string{topic}
	}
	return keywords
}

// ResolveConfig derives a complete, validated content brief from raw input.
// It is pure and deterministic: Lite mode merges the platform default table
// with the user's topic, keywords, platform, and tone; Expert mode passes
// every field through after validating it against the enum sets. The mode
// is recorded on the config but does not change its shape.
func ResolveConfig(input Input, mode models.GenerationMode) (models.ContentConfig, error) {
	topic := strings.TrimSpace(input.Topic)
	if topic == "" {
		return models.ContentConfig{}, &ValidationError{Msg: "topic required"}
	}

	if !input.Platform.Valid() {
		return models.ContentConfig{}, &ValidationError{Msg: fmt.Sprintf("unknown platform: %s", input.Platform)}
	}
	if !input.Tone.Valid() {
		return models.ContentConfig{}, &ValidationError{Msg: fmt.Sprintf("unknown tone: %s", input.Tone)}
	}

	cfg := models.ContentConfig{
		Topic:          topic,
		Keywords:       ParseKeywords(input.Keywords, topic),
		Platform:       input.Platform,
		Tone:           input.Tone,
		GenerationMode: mode,
	}

	switch mode {
	case models.ModeLite:
		defaults, ok := LiteDefaults(input.Platform)
		if !ok {
			// Unreachable while the table stays total over Platform values.
			return models.ContentConfig{}, &ValidationError{Msg: fmt.Sprintf("no defaults for platform: %s", input.Platform)}
		}
		cfg.ContentType = defaults.ContentType
		cfg.ParagraphCount = defaults.ParagraphCount
		cfg.DesignConcept = defaults.DesignConcept
		cfg.TargetPersona = defaults.TargetPersona
		cfg.Addons = defaults.Addons

	case models.ModeExpert:
		if !input.ContentType.Valid() {
			return models.ContentConfig{}, &ValidationError{Msg: fmt.Sprintf("unknown content type: %s", input.ContentType)}
		}
		if input.ParagraphCount < 5 || input.ParagraphCount > 11 {
			return models.ContentConfig{}, &ValidationError{Msg: fmt.Sprintf("paragraph count %d out of range 5-11", input.ParagraphCount)}
		}
		if !input.DesignConcept.Valid() {
			return models.ContentConfig{}, &ValidationError{Msg: fmt.Sprintf("unknown design concept: %s", input.DesignConcept)}
		}
		if !input.TargetPersona.Valid() {
			return models.ContentConfig{}, &ValidationError{Msg: fmt.Sprintf("unknown target persona: %s", input.TargetPersona)}
		}
		for _, addon := range input.Addons {
			if !addon.Valid() {
				return models.ContentConfig{}, &ValidationError{Msg: fmt.Sprintf("unknown addon: %s", addon)}
			}
		}
		cfg.ContentType = input.ContentType
		cfg.ParagraphCount = input.ParagraphCount
		cfg.DesignConcept = input.DesignConcept
		cfg.TargetPersona = input.TargetPersona
		cfg.Addons = input.Addons

	default:
		return models.ContentConfig{}, &ValidationError{Msg: fmt.Sprintf("unknown generation mode: %s", mode)}
	}

	return cfg, nil
}

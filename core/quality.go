package core

import (
	"fmt"
	"strings"
)

// RenderQuality selects the fidelity tier a renderer should use.
type RenderQuality int

const (
	// QualityDebug draws flat-shaded wire-level detail with debug textures.
	QualityDebug RenderQuality = iota
	// QualityLow uses the 2k texture set with coarse tessellation.
	QualityLow
	// QualityHigh uses the 8k texture set with smooth shading and lighting.
	QualityHigh
)

func (q RenderQuality) String() string {
	switch q {
	case QualityDebug:
		return "debug"
	case QualityLow:
		return "low"
	case QualityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseRenderQuality converts a config/API string into a RenderQuality.
func ParseRenderQuality(s string) (RenderQuality, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return QualityDebug, nil
	case "low":
		return QualityLow, nil
	case "high":
		return QualityHigh, nil
	default:
		return QualityLow, fmt.Errorf("unknown render quality %q", s)
	}
}

// RenderSettings are the renderer-consumable values derived from a quality
// tier: sphere tessellation, shading model, lighting, and which texture set
// directory to load.
type RenderSettings struct {
	SphereSegments  int
	SmoothShading   bool
	LightingEnabled bool
	TextureSet      string
}

// Settings maps a quality tier to its render settings.
func (q RenderQuality) Settings() RenderSettings {
	switch q {
	case QualityHigh:
		return RenderSettings{
			SphereSegments:  128,
			SmoothShading:   true,
			LightingEnabled: true,
			TextureSet:      "8k",
		}
	case QualityDebug:
		return RenderSettings{
			SphereSegments: 16,
			TextureSet:     "debug",
		}
	default:
		return RenderSettings{
			SphereSegments: 16,
			TextureSet:     "2k",
		}
	}
}

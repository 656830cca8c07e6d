package pinchzoom

import (
	"encoding/json"
	"fmt"
	"time"
)

// Config holds the per-controller options. Start from DefaultConfig and
// override fields; the zero Config is not usable.
type Config struct {
	// TapZoomFactor is the zoom factor a double tap zooms in to.
	TapZoomFactor float64
	// ZoomOutFactor: when an interaction ends below this zoom factor the
	// controller animates back to 1.
	ZoomOutFactor float64
	// AnimationDuration is the duration of snap-back, zoom-out and
	// double-tap animations.
	AnimationDuration time.Duration
	// MaxZoom and MinZoom bound the zoom factor at all times.
	MaxZoom float64
	MinZoom float64
	// DraggableUnzoomed permits dragging at zoom factor 1. When false, a
	// single finger touch at native scale is left to the host.
	DraggableUnzoomed bool
	// LockDragAxis applies each drag sample only along its dominant axis.
	LockDragAxis bool
	// SetOffsetsOnce computes the initial centering offset only on the
	// first Layout call.
	SetOffsetsOnce bool
	// VerticalPadding and HorizontalPadding extend the valid offset range
	// beyond the element edges.
	VerticalPadding   float64
	HorizontalPadding float64

	// EventNames overrides the notification identifiers. Missing entries
	// use DefaultEventNames.
	EventNames map[EventType]string
	// Handlers are optional lifecycle callbacks, invoked only when present.
	Handlers map[EventType]HandlerFunc
}

// DefaultConfig returns the default options.
func DefaultConfig() Config {
	return Config{
		TapZoomFactor:     2,
		ZoomOutFactor:     1.3,
		AnimationDuration: 300 * time.Millisecond,
		MaxZoom:           4,
		MinZoom:           0.5,
		DraggableUnzoomed: true,
	}
}

// Validate reports option combinations the controller assumes never occur.
// The controller does not call it.
func (c Config) Validate() error {
	if c.MinZoom <= 0 {
		return fmt.Errorf("config: minZoom %v must be positive", c.MinZoom)
	}
	if c.MinZoom >= c.MaxZoom {
		return fmt.Errorf("config: minZoom %v must be less than maxZoom %v", c.MinZoom, c.MaxZoom)
	}
	if c.ZoomOutFactor > 1 && c.ZoomOutFactor > c.MaxZoom {
		return fmt.Errorf("config: zoomOutFactor %v exceeds maxZoom %v", c.ZoomOutFactor, c.MaxZoom)
	}
	if c.TapZoomFactor < 1 {
		return fmt.Errorf("config: tapZoomFactor %v is below 1", c.TapZoomFactor)
	}
	if c.AnimationDuration < 0 {
		return fmt.Errorf("config: negative animation duration %v", c.AnimationDuration)
	}
	return nil
}

func (c Config) eventName(e EventType) string {
	if name, ok := c.EventNames[e]; ok && name != "" {
		return name
	}
	return e.String()
}

// configJSON mirrors Config with optional fields so that absent keys keep
// their defaults.
type configJSON struct {
	TapZoomFactor       *float64          `json:"tapZoomFactor"`
	ZoomOutFactor       *float64          `json:"zoomOutFactor"`
	AnimationDurationMs *int              `json:"animationDurationMs"`
	MaxZoom             *float64          `json:"maxZoom"`
	MinZoom             *float64          `json:"minZoom"`
	DraggableUnzoomed   *bool             `json:"draggableUnzoomed"`
	LockDragAxis        *bool             `json:"lockDragAxis"`
	SetOffsetsOnce      *bool             `json:"setOffsetsOnce"`
	VerticalPadding     *float64          `json:"verticalPadding"`
	HorizontalPadding   *float64          `json:"horizontalPadding"`
	EventNames          map[string]string `json:"eventNames"`
}

// eventKeys maps the JSON keys accepted under "eventNames" to event types.
var eventKeys = map[string]EventType{
	"zoomStart":  EventZoomStart,
	"zoomUpdate": EventZoomUpdate,
	"zoomEnd":    EventZoomEnd,
	"dragStart":  EventDragStart,
	"dragUpdate": EventDragUpdate,
	"dragEnd":    EventDragEnd,
	"doubleTap":  EventDoubleTap,
}

// LoadConfig parses JSON options and merges them over DefaultConfig.
// Handlers cannot be expressed in JSON and are left empty.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	var raw configJSON
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setFloat(&cfg.TapZoomFactor, raw.TapZoomFactor)
	setFloat(&cfg.ZoomOutFactor, raw.ZoomOutFactor)
	setFloat(&cfg.MaxZoom, raw.MaxZoom)
	setFloat(&cfg.MinZoom, raw.MinZoom)
	setFloat(&cfg.VerticalPadding, raw.VerticalPadding)
	setFloat(&cfg.HorizontalPadding, raw.HorizontalPadding)
	setBool(&cfg.DraggableUnzoomed, raw.DraggableUnzoomed)
	setBool(&cfg.LockDragAxis, raw.LockDragAxis)
	setBool(&cfg.SetOffsetsOnce, raw.SetOffsetsOnce)
	if raw.AnimationDurationMs != nil {
		cfg.AnimationDuration = time.Duration(*raw.AnimationDurationMs) * time.Millisecond
	}

	if len(raw.EventNames) > 0 {
		cfg.EventNames = make(map[EventType]string, len(raw.EventNames))
		for key, name := range raw.EventNames {
			et, ok := eventKeys[key]
			if !ok {
				return cfg, fmt.Errorf("parse config: unknown event %q", key)
			}
			cfg.EventNames[et] = name
		}
	}
	return cfg, nil
}

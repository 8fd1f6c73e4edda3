package main

import (
	"fmt"

	"github.com/example/rasterpaint/internal/config"
	"github.com/example/rasterpaint/internal/editor"
	"github.com/example/rasterpaint/internal/tool"
)

func (r *root) settings() *config.Config {
	if r == nil || r.config == nil {
		return config.New()
	}
	return r.config
}

// sessionOptions returns the editor options implied by the configuration.
func (r *root) sessionOptions() []editor.Option {
	cfg := r.settings()
	return []editor.Option{
		editor.WithColors(cfg.Tools.Foreground, cfg.Canvas.Background),
		editor.WithHistoryLimit(cfg.History.Limit),
	}
}

// applyConfig copies the configured tool settings into s.
func applyConfig(s *editor.Session, cfg *config.Config) error {
	pattern, err := tool.ParsePattern(cfg.Tools.LineStyle)
	if err != nil {
		return fmt.Errorf("config line_style: %w", err)
	}
	join, err := tool.ParseJoin(cfg.Tools.JoinStyle)
	if err != nil {
		return fmt.Errorf("config join_style: %w", err)
	}
	s.SetStrokeStyle(tool.Freehand, cfg.Tools.PencilSize, tool.Solid, join)
	s.SetStrokeStyle(tool.Eraser, cfg.Tools.EraserSize, tool.Solid, join)
	s.SetStrokeStyle(tool.StraightLine, cfg.Tools.LineSize, pattern, join)
	s.SetStrokeStyle(tool.Shape, cfg.Tools.ShapeSize, pattern, join)
	s.SetRectCurve(cfg.Tools.RectCurve)
	return nil
}

func (r *root) newSession(opts ...editor.Option) (*editor.Session, error) {
	s := editor.New(append(r.sessionOptions(), opts...)...)
	if err := applyConfig(s, r.settings()); err != nil {
		return nil, err
	}
	return s, nil
}

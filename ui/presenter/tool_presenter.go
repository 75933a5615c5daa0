package presenter

import (
	"fmt"
	"log/slog"

	"github.com/soocke/roi-plot-go/domain/region"
	"github.com/soocke/roi-plot-go/domain/roi"
)

// ToolModel provides armed tool access.
type ToolModel interface {
	Armed() (roi.Kind, bool)
	Arm(roi.Kind)
	Disarm()
	NextSeq() uint64
}

// Creator runs the region creation gesture.
type Creator interface {
	BeginCreate(name string, k roi.Kind) (*region.Region, error)
	CancelCreate()
	Creating() *region.Region
}

// ToolView updates UI elements affected by arming a tool.
type ToolView interface {
	SetToolLabel(text string)
	ConfigEditable(bool)
}

// ToolPresenter owns presentation logic for arming creation tools.
type ToolPresenter struct {
	model   ToolModel
	creator Creator
	view    ToolView
	logger  *slog.Logger
}

func NewToolPresenter(model ToolModel, creator Creator, view ToolView, logger *slog.Logger) *ToolPresenter {
	return &ToolPresenter{model: model, creator: creator, view: view, logger: logger}
}

// Arm starts a creation gesture of kind k, coordinating graph, model and
// view. Arming the kind already armed is a no-op.
func (p *ToolPresenter) Arm(k roi.Kind) error {
	if p == nil || p.model == nil || p.creator == nil || p.view == nil {
		return nil
	}
	if cur, ok := p.model.Armed(); ok && cur == k && p.creator.Creating() != nil {
		return nil
	}
	name := fmt.Sprintf("%s-%d", k, p.model.NextSeq())
	if _, err := p.creator.BeginCreate(name, k); err != nil {
		if p.logger != nil {
			p.logger.Error("begin create", "kind", k.String(), "error", err)
		}
		return err
	}
	p.model.Arm(k)
	p.view.SetToolLabel("Tool: " + k.String())
	p.view.ConfigEditable(false)
	return nil
}

// Disarm cancels a pending creation. Idempotent.
func (p *ToolPresenter) Disarm() {
	if p == nil || p.model == nil || p.creator == nil || p.view == nil {
		return
	}
	if _, ok := p.model.Armed(); !ok {
		return
	}
	p.creator.CancelCreate()
	p.reset()
}

// Toggle disarms k when it is armed and arms it otherwise.
func (p *ToolPresenter) Toggle(k roi.Kind) error {
	if p == nil || p.model == nil {
		return nil
	}
	if cur, ok := p.model.Armed(); ok && cur == k {
		p.Disarm()
		return nil
	}
	return p.Arm(k)
}

// OnRegionAdded disarms the tool once its creation gesture finished.
func (p *ToolPresenter) OnRegionAdded(_ *region.Region) {
	if p == nil || p.model == nil || p.creator == nil || p.view == nil {
		return
	}
	if _, ok := p.model.Armed(); ok && p.creator.Creating() == nil {
		p.reset()
	}
}

func (p *ToolPresenter) reset() {
	p.model.Disarm()
	p.view.SetToolLabel("Tool: <none>")
	p.view.ConfigEditable(true)
}

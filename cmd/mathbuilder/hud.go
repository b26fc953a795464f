package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/mathbuilder/prefabs"
	"github.com/milk9111/mathbuilder/save"
	"github.com/milk9111/mathbuilder/titles"
)

// HUD is the progress panel in the top-right corner.
type HUD struct {
	UI *ebitenui.UI

	level    *widget.Text
	stars    *widget.Text
	xp       *widget.Text
	next     *widget.Text
	feedback *widget.Text
}

func NewHUD(spec prefabs.GameSpec) *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	label := func(c color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text("", &face, c),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		)
	}

	h := &HUD{
		level:    label(white),
		stars:    label(color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}),
		xp:       label(white),
		next:     label(color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}),
		feedback: label(color.NRGBA{R: 0x9a, G: 0xff, B: 0x9a, A: 0xff}),
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(spec.Screen.Width/3, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(h.level)
	panel.AddChild(h.stars)
	panel.AddChild(h.xp)
	panel.AddChild(h.next)
	panel.AddChild(h.feedback)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
	)
	root.AddChild(panel)

	h.UI = &ebitenui.UI{Container: root}
	return h
}

// Refresh rewrites the panel labels from the saved progress and the state of
// the level being played.
func (h *HUD) Refresh(st save.State, number, wrong int, feedback string) {
	h.level.Label = fmt.Sprintf("Level %d   wrong answers: %d", number, wrong)
	h.stars.Label = fmt.Sprintf("Best: %s   Total stars: %d", starString(st.StarsFor(number)), st.TotalStars)
	h.xp.Label = fmt.Sprintf("XP %d   %s", st.XP, titles.ForXP(st.XP))
	if tier, ok := titles.Next(st.XP); ok {
		h.next.Label = fmt.Sprintf("%d XP to %s", tier.XP-st.XP, tier.Title)
	} else {
		h.next.Label = "Top title reached"
	}
	h.feedback.Label = feedback
}

func starString(n int) string {
	out := ""
	for i := 1; i <= 3; i++ {
		if i <= n {
			out += "*"
		} else {
			out += "-"
		}
	}
	return out
}

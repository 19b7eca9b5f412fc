package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/shopfront/overlay"
	"github.com/milk9111/shopfront/prefabs"
	"github.com/milk9111/shopfront/state"
	"golang.org/x/image/font/basicfont"
)

// overlayUI holds the widgets drawn above the scene: the back button shown
// while a section is open and the social links bar.
type overlayUI struct {
	ui     *ebitenui.UI
	back   *widget.Container
	social *widget.Container
}

// newOverlayUI builds the back button and the social bar. Buttons use
// colored nine-slices and the built-in basic font, so no theme assets are
// needed.
func newOverlayUI(store *state.Store, links []prefabs.LinkSpec, platform overlay.Platform) *overlayUI {
	barImg := imageui.NewNineSliceColor(color.NRGBA{A: 77})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{A: 0})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 24})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{
		Idle:  color.NRGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff},
		Hover: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	btnImage := &widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnHover}

	back := widget.NewButton(
		widget.ButtonOpts.Image(btnImage),
		widget.ButtonOpts.Text("< Back", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(72, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			store.DeselectSection()
		}),
	)
	backBox := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Left: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	backBox.AddChild(back)

	social := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(barImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 18, Right: 18}),
		)),
	)
	socialBox := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	socialBox.AddChild(social)
	for _, l := range links {
		link := l
		social.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImage),
			widget.ButtonOpts.Text(link.Label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(len(link.Label)*7+16, 24)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if err := platform.OpenURL(link.URL); err != nil {
					log.Printf("ui: open %s: %v", link.URL, err)
				}
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(backBox)
	root.AddChild(socialBox)

	o := &overlayUI{
		ui:     &ebitenui.UI{Container: root},
		back:   backBox,
		social: socialBox,
	}
	o.sync(store, true)
	return o
}

// sync shows the back button only while a section is open and the social
// bar only once the splash has gone.
func (o *overlayUI) sync(store *state.Store, splash bool) {
	back, social := overlayVisibility(store.Section(), splash)
	o.back.GetWidget().Visibility = back
	o.social.GetWidget().Visibility = social
}

func overlayVisibility(section state.Section, splash bool) (back, social widget.Visibility) {
	back, social = widget.Visibility_Hide, widget.Visibility_Hide
	if section.Selectable() {
		back = widget.Visibility_Show
	}
	if !splash {
		social = widget.Visibility_Show
	}
	return back, social
}

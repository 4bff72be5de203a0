package main

import (
	"fmt"

	"github.com/jroimartin/gocui"
)

func initGui() (*gocui.Gui, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	g.Cursor = true
	return g, nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func keybindings(g *gocui.Gui) error {
	return g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit)
}

// layout draws the two panes: a scrolling frame log on the left, the
// observed-station table on the right.
func layout(mon *monitor) func(g *gocui.Gui) error {
	return func(g *gocui.Gui) error {
		mX, mY := g.Size()
		if mX < 20 || mY < 10 {
			return nil
		}
		frames, err := g.SetView("frames", 0, 0, mX*2/3, mY-1)
		if err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
			frames.Title = "Frames"
			frames.Autoscroll = true
			frames.Wrap = false
		}
		stations, err := g.SetView("stations", mX*2/3+1, 0, mX-1, mY-1)
		if err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
			stations.Title = "Stations"
		}
		printStations(stations, mon.stations)
		return nil
	}
}

func printStations(v *gocui.View, l *stationList) {
	v.Clear()
	for _, s := range l.Snapshot() {
		ssid := s.SSID
		if ssid == "" {
			ssid = "-"
		}
		fmt.Fprintf(v, "%-17s %-20s %d\n", s.Addr, ssid, s.Frames)
	}
}

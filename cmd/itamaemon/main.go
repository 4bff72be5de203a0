// Command itamaemon puts a wireless interface into monitor mode, hops
// the 2.4GHz channels, and shows the frames and stations it observes
// in a terminal UI.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dauie/go-netlink/nl80211"
	"github.com/jroimartin/gocui"

	"github.com/wraith-wireless/itamae"
	"github.com/wraith-wireless/itamae/internal/rfctl"
)

func help() {
	fmt.Printf("useage: %s <monitor iface>\n", os.Args[0])
	os.Exit(1)
}

type monitor struct {
	conn     *rfctl.Conn
	capture  *rfctl.Capture
	stations *stationList
}

func main() {
	if len(os.Args) < 2 {
		help()
	}
	conn, err := rfctl.Open(os.Args[1])
	if err != nil {
		log.Fatalln("rfctl.Open()", err)
	}
	defer conn.Close()

	if err := conn.SetIfaceType(nl80211.IFTYPE_MONITOR); err != nil {
		log.Fatalln("Conn.SetIfaceType()", err)
	}
	defer conn.SetIfaceType(nl80211.IFTYPE_STATION)

	capHandle, err := rfctl.OpenCapture(conn.InterfaceName())
	if err != nil {
		log.Fatalln("rfctl.OpenCapture()", err)
	}
	defer capHandle.Close()

	if err := conn.SetChannel(1); err != nil {
		log.Fatalln("Conn.SetChannel()", err)
	}

	mon := &monitor{conn: conn, capture: capHandle, stations: newStationList()}

	g, err := initGui()
	if err != nil {
		log.Fatalln("initGui()", err)
	}
	defer g.Close()
	g.SetManagerFunc(layout(mon))
	if err := keybindings(g); err != nil {
		log.Fatalln("keybindings()", err)
	}

	quit := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT)
	go func() {
		<-sigc
		close(quit)
		g.Update(func(g *gocui.Gui) error { return gocui.ErrQuit })
	}()

	go monitorLoop(g, mon, quit)
	go scanLoop(mon, quit)

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Fatalln("gocui.Gui.MainLoop()", err)
	}
}

// monitorLoop reads captured frames, decoded by itamae rather than
// gopacket/layers, hops channels on a timer, and feeds the frame log
// view and station table.
func monitorLoop(g *gocui.Gui, mon *monitor, quit chan struct{}) {
	for {
		select {
		case <-quit:
			return
		default:
		}
		frame, err := mon.capture.Next()
		if err != nil {
			if err.Error() != "Timeout Expired" {
				log.Println("Capture.Next()", err)
			}
		} else {
			mon.stations.Observe(frame.MPDU.Addr2)
			line := sPrintFrame(frame)
			g.Update(func(g *gocui.Gui) error {
				v, err := g.View("frames")
				if err != nil {
					return nil
				}
				fmt.Fprintln(v, line)
				return nil
			})
		}
		if _, err := mon.conn.HopChannel(500 * time.Millisecond); err != nil {
			log.Println("Conn.HopChannel()", err)
		}
	}
}

// scanLoop periodically triggers an nl80211 scan and folds SSIDs into
// the station table so the transmitter addresses observed in
// monitorLoop get a human-readable network name.
func scanLoop(mon *monitor, quit chan struct{}) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			if err := mon.conn.TriggerScan(); err != nil {
				log.Println("Conn.TriggerScan()", err)
				continue
			}
			results, err := mon.conn.Scan()
			if err != nil {
				log.Println("Conn.Scan()", err)
				continue
			}
			for _, bss := range results {
				if bss.BSSID != nil {
					mon.stations.SetSSID(bss.BSSID.String(), bss.SSID)
				}
			}
		}
	}
}

func sPrintFrame(f *rfctl.Frame) string {
	rate := "?"
	if r, ok := f.Radiotap.Rate(); ok {
		rate = fmt.Sprintf("%.1fMb/s", r)
	}
	s := fmt.Sprintf("%s | %s | %s", f.CapturedAt.Format("15:04:05.000"), rate, f.MPDU.TypeDesc())
	if f.HasChannel {
		s += fmt.Sprintf(" | ch%d", f.Channel.Number)
	}
	if f.MPDU.Addr2 != "" {
		s += " | " + f.MPDU.Addr2
	}
	if f.MPDU.Crypt.Variant != itamae.CryptNone {
		s += " | " + f.MPDU.Crypt.Variant.String()
	}
	return s
}

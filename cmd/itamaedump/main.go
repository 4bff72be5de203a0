// Command itamaedump replays a pcap capture of 802.11 radiotap-tagged
// frames and prints one decoded line per frame.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/gopacket/pcapgo"

	"github.com/wraith-wireless/itamae"
)

func help() {
	fmt.Printf("useage: %s <pcap file>\n", os.Args[0])
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		help()
	}
	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalln("os.Open()", err)
	}
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	if err != nil {
		log.Fatalln("pcapgo.NewReader()", err)
	}

	var total, decodeErrs int
	for {
		data, ci, err := r.ReadPacketData()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			log.Fatalln("pcapgo.Reader.ReadPacketData()", err)
		}
		total++
		rt, m, err := decodeFrame(data)
		if err != nil {
			decodeErrs++
			fmt.Printf("%s | decode error: %s\n", ci.Timestamp.Format("15:04:05.000000"), err)
			continue
		}
		fmt.Println(sPrintFrame(ci, rt, m))
	}
	fmt.Printf("\n%d frames, %d decode errors\n", total, decodeErrs)
}

// decodeFrame runs a captured frame through itamae's own Radiotap and
// MPDU decoders, never gopacket/layers.
func decodeFrame(data []byte) (*itamae.Radiotap, *itamae.MPDU, error) {
	rt, err := itamae.ParseRadiotap(data)
	if err != nil {
		return nil, nil, err
	}
	start := rt.DatapadAdjustedSize()
	if start > len(data) {
		return rt, nil, fmt.Errorf("radiotap size %d exceeds frame length %d", start, len(data))
	}
	hasFCS := rt.Has(itamae.FieldFlags) && rt.Flags.FCS()
	m, err := itamae.Parse(data[start:], hasFCS)
	if err != nil {
		return rt, nil, err
	}
	return rt, m, nil
}

package rfctl

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/mdlayher/genetlink"
)

// Interface resolves a network interface by name.
func Interface(name string) (net.Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.Interface{}, errors.New("net.Interfaces() " + err.Error())
	}
	for _, v := range ifaces {
		if v.Name == name {
			return v, nil
		}
	}
	return net.Interface{}, fmt.Errorf("interface %s not found", name)
}

// NL80211Family resolves the nl80211 generic netlink family on this
// system.
func NL80211Family(conn *genetlink.Conn) (*genetlink.Family, error) {
	fam, err := conn.GetFamily("nl80211")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("nl80211 not found on system: " + err.Error())
		}
		return nil, err
	}
	return &fam, nil
}

// ScanMulticastID finds the multicast group ID used for scan
// notifications on the nl80211 family.
func ScanMulticastID(fam *genetlink.Family) (uint32, error) {
	for _, g := range fam.Groups {
		if g.Name == "scan" {
			return g.ID, nil
		}
	}
	return 0, errors.New("nl80211 family has no 'scan' multicast group")
}

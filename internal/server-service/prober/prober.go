package prober

import (
	"errors"
	"fmt"
	"net"
	"os"
	"sync/atomic"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

const DefaultTimeout = 5 * time.Second

type Prober interface {
	// IsReachable reports whether ipAddress answered an echo request within the probe timeout.
	// An unanswered probe is not an error; err is only set when the probe could not be performed.
	IsReachable(ipAddress string) (bool, error)
}

type pingFunc func(ip net.IP, timeout time.Duration, privileged bool) (bool, error)

type icmpProber struct {
	timeout    time.Duration
	privileged atomic.Bool
	ping       pingFunc
}

func ping(ip net.IP, timeout time.Duration, privileged bool) (bool, error) {
	pinger := probing.New(ip.String())
	if err := pinger.Resolve(); err != nil {
		return false, err
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(privileged)
	if err := pinger.Run(); err != nil {
		return false, err
	}
	return pinger.Statistics().PacketsRecv > 0, nil
}

// IsReachable switches to the other socket mode when the current one is refused by the kernel
// and keeps using whichever mode succeeded.
func (p *icmpProber) IsReachable(ipAddress string) (bool, error) {
	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return false, fmt.Errorf("Prober.IsReachable: invalid ip address %q", ipAddress)
	}
	if ip.IsUnspecified() {
		return false, fmt.Errorf("Prober.IsReachable: unspecified address %s", ipAddress)
	}

	privileged := p.privileged.Load()
	reachable, err := p.ping(ip, p.timeout, privileged)
	if err != nil && errors.Is(err, os.ErrPermission) {
		reachable, err = p.ping(ip, p.timeout, !privileged)
		if err == nil {
			p.privileged.CompareAndSwap(privileged, !privileged)
		}
	}
	if err != nil {
		return false, fmt.Errorf("Prober.IsReachable: %w", err)
	}
	return reachable, nil
}

// NewICMPProber sends a single ICMP echo per probe. Unprivileged mode uses UDP ICMP sockets,
// which on Linux requires the caller's group to be within net.ipv4.ping_group_range;
// raw sockets need CAP_NET_RAW.
func NewICMPProber(timeout time.Duration, privileged bool) Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	p := &icmpProber{
		timeout: timeout,
		ping:    ping,
	}
	p.privileged.Store(privileged)
	return p
}

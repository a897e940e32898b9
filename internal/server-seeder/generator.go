package seeder

import (
	"VCS_Server_Manager/internal/server-service/model"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/netip"
)

var (
	ErrInvalidCount   = errors.New("count must be positive")
	ErrNoOsTypes      = errors.New("at least one os type is required")
	DefaultOsTypes    = []string{"Linux", "Windows", "MacOS"}
	minMemorySizeInGB = 2
	maxMemorySizeInGB = 64
)

// Generator builds random servers whose ip addresses never repeat within one call.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) randomIpAddress() string {
	b := [4]byte{byte(1 + g.rng.IntN(223)), byte(g.rng.IntN(256)), byte(g.rng.IntN(256)), byte(1 + g.rng.IntN(254))}
	return netip.AddrFrom4(b).String()
}

func (g *Generator) Generate(count int, osTypes []string) ([]model.Server, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if len(osTypes) == 0 {
		return nil, ErrNoOsTypes
	}
	used := make(map[string]struct{}, count)
	servers := make([]model.Server, 0, count)
	for i := 0; i < count; i++ {
		var ipAddress string
		for {
			ipAddress = g.randomIpAddress()
			if _, ok := used[ipAddress]; !ok {
				break
			}
		}
		used[ipAddress] = struct{}{}

		status := model.ServerStatusDown
		if g.rng.IntN(2) == 1 {
			status = model.ServerStatusUp
		}
		servers = append(servers, model.Server{
			IpAddress:  ipAddress,
			Name:       fmt.Sprintf("server-%d", i+1),
			MemorySize: fmt.Sprintf("%d GB", minMemorySizeInGB+g.rng.IntN(maxMemorySizeInGB-minMemorySizeInGB+1)),
			OsType:     osTypes[g.rng.IntN(len(osTypes))],
			Status:     status,
		})
	}
	return servers, nil
}

package seeder

import (
	"VCS_Server_Manager/internal/server-service/model"
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// SaveFunc persists generated servers and returns the saved records.
type SaveFunc func(ctx context.Context, envPath string, servers []model.Server) ([]model.Server, error)

type options struct {
	count   int
	osTypes []string
	envPath string
	seed    uint64
}

func NewCommand(save SaveFunc) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "server-seeder",
		Short: "Insert random servers into the inventory",
		Long: `Generates servers with unique random ipv4 addresses and saves them in one batch.
The batch is rejected as a whole when any generated ip address is already stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed := opts.seed
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			generator := NewGenerator(rand.New(rand.NewPCG(seed, seed>>1)))
			osTypes := make([]string, 0, len(opts.osTypes))
			for _, osType := range opts.osTypes {
				if osType = strings.TrimSpace(osType); osType != "" {
					osTypes = append(osTypes, osType)
				}
			}
			servers, err := generator.Generate(opts.count, osTypes)
			if err != nil {
				return err
			}
			saved, err := save(cmd.Context(), opts.envPath, servers)
			if err != nil {
				return fmt.Errorf("seed servers: %w", err)
			}
			cmd.Printf("Saved %d servers.\n", len(saved))
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.count, "count", 10, "number of servers to generate")
	cmd.Flags().StringSliceVar(&opts.osTypes, "os-types", DefaultOsTypes, "os types to pick from")
	cmd.Flags().StringVar(&opts.envPath, "env", "./.env", "path of the env file holding the database settings")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	return cmd
}

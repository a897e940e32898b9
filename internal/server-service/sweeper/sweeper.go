package sweeper

import (
	"VCS_Server_Manager/internal/server-service/model"
	"VCS_Server_Manager/internal/server-service/service"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	defaultWorkers  = 10
	defaultPageSize = 100
)

type Result struct {
	Up     int
	Down   int
	Failed int
}

// Sweeper periodically pings every stored server and persists the resulting status.
type Sweeper interface {
	Start()
	Stop()
	Sweep(ctx context.Context) Result
}

type sweeper struct {
	serverService service.ServerService
	interval      time.Duration
	workers       int
	pageSize      int
	logger        *zap.Logger
	stopChan      chan struct{}
	done          chan struct{}
	started       atomic.Bool
	startOnce     sync.Once
	stopOnce      sync.Once
}

// Start launches the sweep loop once; later calls are no-ops.
func (s *sweeper) Start() {
	s.startOnce.Do(s.run)
}

func (s *sweeper) run() {
	s.started.Store(true)
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), s.interval)
				start := time.Now()
				res := s.Sweep(ctx)
				cancel()
				s.logger.Info("ping sweep finished",
					zap.Int("up", res.Up),
					zap.Int("down", res.Down),
					zap.Int("failed", res.Failed),
					zap.Duration("took", time.Since(start)))
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop waits for an in-flight sweep to return.
func (s *sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.started.Load() {
			<-s.done
		}
	})
}

// Sweep pages through the servers by ascending id and pings them with a fixed number of workers.
// A failed ping is counted and logged; it does not stop the sweep.
func (s *sweeper) Sweep(ctx context.Context) Result {
	var (
		res Result
		mu  sync.Mutex
		wg  sync.WaitGroup
	)
	ipAddresses := make(chan string)
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ipAddress := range ipAddresses {
				server, err := s.serverService.PingServer(ctx, ipAddress)
				if err != nil {
					s.logger.Warn("failed to ping server during sweep", zap.String("ip_address", ipAddress),
						zap.Error(fmt.Errorf("sweeper.Sweep: %w", err)))
				}
				mu.Lock()
				switch {
				case err != nil:
					res.Failed++
				case server.Status == model.ServerStatusUp:
					res.Up++
				default:
					res.Down++
				}
				mu.Unlock()
			}
		}()
	}

	s.dispatch(ctx, ipAddresses)
	close(ipAddresses)
	wg.Wait()
	return res
}

func (s *sweeper) dispatch(ctx context.Context, ipAddresses chan<- string) {
	for page := 0; ; page++ {
		servers, err := s.serverService.GetServers(ctx, page, s.pageSize)
		if err != nil {
			s.logger.Error("failed to list servers for sweep", zap.Int("page", page),
				zap.Error(fmt.Errorf("sweeper.dispatch: %w", err)))
			return
		}
		for _, server := range servers {
			select {
			case ipAddresses <- server.IpAddress:
			case <-ctx.Done():
				return
			}
		}
		if len(servers) < s.pageSize {
			return
		}
	}
}

func NewSweeper(serverService service.ServerService, interval time.Duration, workers int, pageSize int, logger *zap.Logger) Sweeper {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &sweeper{
		serverService: serverService,
		interval:      interval,
		workers:       workers,
		pageSize:      pageSize,
		logger:        logger,
		stopChan:      make(chan struct{}),
		done:          make(chan struct{}),
	}
}

package service

import (
	"VCS_Server_Manager/internal/server-service/event"
	apperrors "VCS_Server_Manager/internal/server-service/errors"
	"VCS_Server_Manager/internal/server-service/metrics"
	"VCS_Server_Manager/internal/server-service/model"
	"VCS_Server_Manager/internal/server-service/prober"
	"VCS_Server_Manager/internal/server-service/repository"
	"VCS_Server_Manager/pkg/mail"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type ServerService interface {
	GetServers(ctx context.Context, page int, size int) ([]model.Server, error)
	GetServerById(ctx context.Context, id uint) (model.Server, error)
	GetServerByIpAddress(ctx context.Context, ipAddress string) (model.Server, error)
	PingServer(ctx context.Context, ipAddress string) (model.Server, error)
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	CreateServers(ctx context.Context, servers []model.Server) ([]model.Server, error)
	UpdateServer(ctx context.Context, server model.Server) (model.Server, error)
	DeleteServer(ctx context.Context, id uint) (bool, error)
	ReportServersStatus(ctx context.Context, mail string) error
}

type serverService struct {
	serverRepository repository.ServerRepository
	prober           prober.Prober
	publisher        event.Publisher
	mailSender       mail.Sender
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

func notFoundError() error {
	return apperrors.NewNotFoundError("Server not found", apperrors.ErrServerNotFound)
}

func ipAddressNotFoundError(ipAddress string) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("Server with ip address %s not found", ipAddress), apperrors.ErrServerNotFound)
}

func ipAddressConflictError(ipAddress string) error {
	return apperrors.NewConflictError(fmt.Sprintf("Server with ip address %s already exists", ipAddress), apperrors.ErrIpAddressAlreadyExists)
}

// ipAddressTaken treats a lookup miss as "free" and passes through any other repository failure.
func ipAddressTaken(_ model.Server, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperrors.ErrServerNotFound) {
		return false, nil
	}
	return false, err
}

func (s *serverService) publish(ctx context.Context, eventType string, servers ...model.Server) {
	if len(servers) == 0 {
		return
	}
	events := make([]event.ServerEvent, 0, len(servers))
	for _, server := range servers {
		events = append(events, event.NewServerEvent(eventType, server))
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish server event", zap.String("event_type", eventType), zap.Error(err))
	}
}

func (s *serverService) GetServers(ctx context.Context, page int, size int) ([]model.Server, error) {
	s.logger.Debug("finding all servers", zap.Int("page", page), zap.Int("size", size))
	servers, err := s.serverRepository.GetServers(ctx, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("ServerService.GetServers: %w", err)
	}
	return servers, nil
}

func (s *serverService) GetServerById(ctx context.Context, id uint) (model.Server, error) {
	s.logger.Debug("finding server by id", zap.Uint("id", id))
	server, err := s.serverRepository.GetServerById(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrServerNotFound) {
			return model.Server{}, fmt.Errorf("ServerService.GetServerById: %w", notFoundError())
		}
		return model.Server{}, fmt.Errorf("ServerService.GetServerById: %w", err)
	}
	return server, nil
}

func (s *serverService) GetServerByIpAddress(ctx context.Context, ipAddress string) (model.Server, error) {
	s.logger.Debug("finding server by ip address", zap.String("ip_address", ipAddress))
	server, err := s.serverRepository.GetServerByIpAddress(ctx, ipAddress)
	if err != nil {
		if errors.Is(err, apperrors.ErrServerNotFound) {
			return model.Server{}, fmt.Errorf("ServerService.GetServerByIpAddress: %w", ipAddressNotFoundError(ipAddress))
		}
		return model.Server{}, fmt.Errorf("ServerService.GetServerByIpAddress: %w", err)
	}
	return server, nil
}

func (s *serverService) PingServer(ctx context.Context, ipAddress string) (model.Server, error) {
	s.logger.Info("pinging server", zap.String("ip_address", ipAddress))
	server, err := s.GetServerByIpAddress(ctx, ipAddress)
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.PingServer: %w", err)
	}

	start := time.Now()
	reachable, err := s.prober.IsReachable(ipAddress)
	if err != nil {
		s.observePing(metrics.PingResultError, time.Since(start))
		return model.Server{}, fmt.Errorf("ServerService.PingServer: %w",
			apperrors.NewInternalError("Error pinging server : "+err.Error(), err))
	}
	if reachable {
		server.Status = model.ServerStatusUp
		s.observePing(metrics.PingResultUp, time.Since(start))
	} else {
		server.Status = model.ServerStatusDown
		s.observePing(metrics.PingResultDown, time.Since(start))
	}

	saved, err := s.serverRepository.SaveServer(ctx, server)
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.PingServer: %w", err)
	}
	s.publish(ctx, event.TypeServerPinged, saved)
	return saved, nil
}

func (s *serverService) observePing(result string, d time.Duration) {
	if s.metrics != nil {
		s.metrics.ObservePing(result, d)
	}
}

func (s *serverService) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	s.logger.Info("creating server", zap.String("ip_address", server.IpAddress), zap.String("name", server.Name))
	server.ID = 0
	taken, err := ipAddressTaken(s.serverRepository.GetServerByIpAddress(ctx, server.IpAddress))
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.CreateServer: %w", err)
	}
	if taken {
		return model.Server{}, fmt.Errorf("ServerService.CreateServer: %w", ipAddressConflictError(server.IpAddress))
	}

	created, err := s.serverRepository.SaveServer(ctx, server)
	if err != nil {
		if errors.Is(err, apperrors.ErrIpAddressAlreadyExists) {
			return model.Server{}, fmt.Errorf("ServerService.CreateServer: %w", ipAddressConflictError(server.IpAddress))
		}
		return model.Server{}, fmt.Errorf("ServerService.CreateServer: %w", err)
	}
	s.publish(ctx, event.TypeServerCreated, created)
	return created, nil
}

// CreateServers saves every server or none. Each ip address must be unused in the store
// and must not repeat within the batch.
func (s *serverService) CreateServers(ctx context.Context, servers []model.Server) ([]model.Server, error) {
	s.logger.Info("saving servers", zap.Int("count", len(servers)))
	batch := make([]model.Server, len(servers))
	copy(batch, servers)
	var saved []model.Server
	err := s.serverRepository.Transaction(ctx, func(repo repository.ServerRepository) error {
		seen := make(map[string]struct{}, len(batch))
		for i := range batch {
			batch[i].ID = 0
			ipAddress := batch[i].IpAddress
			taken, err := ipAddressTaken(repo.GetServerByIpAddress(ctx, ipAddress))
			if err != nil {
				return err
			}
			if _, duplicated := seen[ipAddress]; taken || duplicated {
				return ipAddressConflictError(ipAddress)
			}
			seen[ipAddress] = struct{}{}
		}
		var err error
		saved, err = repo.SaveServers(ctx, batch)
		return err
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindUnknown && errors.Is(err, apperrors.ErrIpAddressAlreadyExists) {
			err = apperrors.NewConflictError("Server ip addresses must be unique", err)
		}
		return nil, fmt.Errorf("ServerService.CreateServers: %w", err)
	}
	s.publish(ctx, event.TypeServerCreated, saved...)
	return saved, nil
}

func (s *serverService) UpdateServer(ctx context.Context, server model.Server) (model.Server, error) {
	s.logger.Info("updating server", zap.Uint("id", server.ID), zap.String("ip_address", server.IpAddress))
	serverToUpdate, err := s.GetServerById(ctx, server.ID)
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", err)
	}

	taken, err := ipAddressTaken(s.serverRepository.GetServerByIpAddressExcludingId(ctx, server.IpAddress, server.ID))
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", err)
	}
	if taken {
		return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", ipAddressConflictError(server.IpAddress))
	}

	serverToUpdate.IpAddress = server.IpAddress
	serverToUpdate.Name = server.Name
	serverToUpdate.MemorySize = server.MemorySize
	serverToUpdate.OsType = server.OsType
	serverToUpdate.Status = server.Status
	updated, err := s.serverRepository.SaveServer(ctx, serverToUpdate)
	if err != nil {
		if errors.Is(err, apperrors.ErrIpAddressAlreadyExists) {
			return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", ipAddressConflictError(server.IpAddress))
		}
		return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", err)
	}
	s.publish(ctx, event.TypeServerUpdated, updated)
	return updated, nil
}

func (s *serverService) DeleteServer(ctx context.Context, id uint) (bool, error) {
	s.logger.Info("deleting server", zap.Uint("id", id))
	server, err := s.GetServerById(ctx, id)
	if err != nil {
		return false, fmt.Errorf("ServerService.DeleteServer: %w", err)
	}
	if err = s.serverRepository.DeleteServerById(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrServerNotFound) {
			return false, fmt.Errorf("ServerService.DeleteServer: %w", notFoundError())
		}
		return false, fmt.Errorf("ServerService.DeleteServer: %w", err)
	}
	s.publish(ctx, event.TypeServerDeleted, server)
	return true, nil
}

func NewServerService(serverRepository repository.ServerRepository, serverProber prober.Prober, publisher event.Publisher, mailSender mail.Sender, serviceMetrics *metrics.Metrics, logger *zap.Logger) ServerService {
	return &serverService{
		serverRepository: serverRepository,
		prober:           serverProber,
		publisher:        publisher,
		mailSender:       mailSender,
		metrics:          serviceMetrics,
		logger:           logger,
	}
}

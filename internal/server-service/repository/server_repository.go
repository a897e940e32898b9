package repository

import (
	apperrors "VCS_Server_Manager/internal/server-service/errors"
	"VCS_Server_Manager/internal/server-service/model"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	serverIpAddressConstraint = "servers_ip_address_key"
	insertBatchSize           = 1000
)

type ServerRepository interface {
	GetServers(ctx context.Context, limit int, offset int) ([]model.Server, error)
	GetServerById(ctx context.Context, serverId uint) (model.Server, error)
	GetServerByIpAddress(ctx context.Context, ipAddress string) (model.Server, error)
	GetServerByIpAddressExcludingId(ctx context.Context, ipAddress string, serverId uint) (model.Server, error)
	SaveServer(ctx context.Context, server model.Server) (model.Server, error)
	SaveServers(ctx context.Context, servers []model.Server) ([]model.Server, error)
	DeleteServerById(ctx context.Context, serverId uint) error
	CountServersByStatus(ctx context.Context) (map[string]int64, error)
	// Transaction runs fn against a repository bound to a single database transaction.
	// The transaction is rolled back when fn returns an error.
	Transaction(ctx context.Context, fn func(repo ServerRepository) error) error
}

type serverRepository struct {
	db *gorm.DB
}

func isIpAddressConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == serverIpAddressConstraint
}

func (s *serverRepository) GetServers(ctx context.Context, limit int, offset int) ([]model.Server, error) {
	servers := make([]model.Server, 0)
	result := s.db.WithContext(ctx).Order("id asc").Limit(limit).Offset(offset).Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetServers: %w", result.Error)
	}
	return servers, nil
}

func (s *serverRepository) GetServerById(ctx context.Context, serverId uint) (model.Server, error) {
	var server model.Server
	result := s.db.WithContext(ctx).First(&server, "id = ?", serverId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetServerById: %w", apperrors.ErrServerNotFound)
		}
		return server, fmt.Errorf("ServerRepository.GetServerById: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) GetServerByIpAddress(ctx context.Context, ipAddress string) (model.Server, error) {
	var server model.Server
	result := s.db.WithContext(ctx).First(&server, "ip_address = ?", ipAddress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetServerByIpAddress: %w", apperrors.ErrServerNotFound)
		}
		return server, fmt.Errorf("ServerRepository.GetServerByIpAddress: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) GetServerByIpAddressExcludingId(ctx context.Context, ipAddress string, serverId uint) (model.Server, error) {
	var server model.Server
	result := s.db.WithContext(ctx).Where("ip_address = ? AND id <> ?", ipAddress, serverId).First(&server)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetServerByIpAddressExcludingId: %w", apperrors.ErrServerNotFound)
		}
		return server, fmt.Errorf("ServerRepository.GetServerByIpAddressExcludingId: %w", result.Error)
	}
	return server, nil
}

// SaveServer inserts the server when it has no id yet, otherwise overwrites every column of the stored row.
func (s *serverRepository) SaveServer(ctx context.Context, server model.Server) (model.Server, error) {
	result := s.db.WithContext(ctx).Save(&server)
	if result.Error != nil {
		if isIpAddressConflict(result.Error) {
			return server, fmt.Errorf("ServerRepository.SaveServer: %w", apperrors.ErrIpAddressAlreadyExists)
		}
		return server, fmt.Errorf("ServerRepository.SaveServer: %w", result.Error)
	}
	return server, nil
}

func (s *serverRepository) SaveServers(ctx context.Context, servers []model.Server) ([]model.Server, error) {
	if len(servers) == 0 {
		return servers, nil
	}
	batch := make([]model.Server, len(servers))
	copy(batch, servers)
	result := s.db.WithContext(ctx).CreateInBatches(&batch, insertBatchSize)
	if result.Error != nil {
		if isIpAddressConflict(result.Error) {
			return nil, fmt.Errorf("ServerRepository.SaveServers: %w", apperrors.ErrIpAddressAlreadyExists)
		}
		return nil, fmt.Errorf("ServerRepository.SaveServers: %w", result.Error)
	}
	return batch, nil
}

func (s *serverRepository) DeleteServerById(ctx context.Context, serverId uint) error {
	result := s.db.WithContext(ctx).Where("id = ?", serverId).Delete(&model.Server{})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ServerRepository.DeleteServerById: %w", apperrors.ErrServerNotFound)
	}
	return nil
}

func (s *serverRepository) CountServersByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	result := s.db.WithContext(ctx).Model(&model.Server{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.CountServersByStatus: %w", result.Error)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (s *serverRepository) Transaction(ctx context.Context, fn func(repo ServerRepository) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&serverRepository{db: tx})
	})
	if err != nil {
		return fmt.Errorf("ServerRepository.Transaction: %w", err)
	}
	return nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}

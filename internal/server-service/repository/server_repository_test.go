package repository

import (
	apperrors "VCS_Server_Manager/internal/server-service/errors"
	"VCS_Server_Manager/internal/server-service/model"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	insertServerQuery = `INSERT INTO "servers" ("ip_address","name","memory_size","os_type","status","created_at","updated_at") VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING "id"`
	selectByIdQuery   = `SELECT * FROM "servers" WHERE id = $1 ORDER BY "servers"."id" LIMIT $2`
	selectByIpQuery   = `SELECT * FROM "servers" WHERE ip_address = $1 ORDER BY "servers"."id" LIMIT $2`
)

var serverColumns = []string{"id", "ip_address", "name", "memory_size", "os_type", "status", "created_at", "updated_at"}

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func serverRow(rows *sqlmock.Rows, s model.Server) *sqlmock.Rows {
	return rows.AddRow(s.ID, s.IpAddress, s.Name, s.MemorySize, s.OsType, s.Status, s.CreatedAt, s.UpdatedAt)
}

func TestGetServers(t *testing.T) {
	now := time.Now()
	server1 := model.Server{ID: 1, IpAddress: "10.0.0.1", Name: "web-1", Status: model.ServerStatusUp, CreatedAt: now, UpdatedAt: now}
	server2 := model.Server{ID: 2, IpAddress: "10.0.0.2", Name: "web-2", Status: model.ServerStatusDown, CreatedAt: now, UpdatedAt: now}

	tests := []struct {
		name      string
		limit     int
		offset    int
		mockSetup func(mock sqlmock.Sqlmock)
		wantCount int
		wantErr   bool
	}{
		{
			name:  "Success first page",
			limit: 10,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(serverColumns)
				serverRow(rows, server1)
				serverRow(rows, server2)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "servers" ORDER BY id asc LIMIT $1`)).
					WithArgs(10).
					WillReturnRows(rows)
			},
			wantCount: 2,
		},
		{
			name:   "Success later page",
			limit:  10,
			offset: 20,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "servers" ORDER BY id asc LIMIT $1 OFFSET $2`)).
					WithArgs(10, 20).
					WillReturnRows(sqlmock.NewRows(serverColumns))
			},
			wantCount: 0,
		},
		{
			name:  "Error DB error",
			limit: 10,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "servers"`)).
					WillReturnError(errors.New("db find error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)

			tc.mockSetup(mock)

			servers, err := repo.GetServers(context.Background(), tc.limit, tc.offset)

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, servers)
				assert.Len(t, servers, tc.wantCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetServerById(t *testing.T) {
	now := time.Now()
	expectedServer := model.Server{ID: 7, IpAddress: "10.0.0.7", Name: "db-1", MemorySize: "32 GB", OsType: "Linux", Status: model.ServerStatusUp, CreatedAt: now, UpdatedAt: now}
	testErr := errors.New("test error")

	tests := []struct {
		name          string
		serverID      uint
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:     "Success",
			serverID: 7,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectByIdQuery)).
					WithArgs(uint(7), 1).
					WillReturnRows(serverRow(sqlmock.NewRows(serverColumns), expectedServer))
			},
		},
		{
			name:     "Error Not Found",
			serverID: 8,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectByIdQuery)).
					WithArgs(uint(8), 1).
					WillReturnRows(sqlmock.NewRows(serverColumns))
			},
			expectedError: apperrors.ErrServerNotFound,
		},
		{
			name:     "Error Generic Database Error",
			serverID: 9,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectByIdQuery)).
					WithArgs(uint(9), 1).
					WillReturnError(testErr)
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)

			tc.mockSetup(mock)

			server, err := repo.GetServerById(context.Background(), tc.serverID)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, expectedServer.ID, server.ID)
				assert.Equal(t, expectedServer.IpAddress, server.IpAddress)
				assert.Equal(t, expectedServer.MemorySize, server.MemorySize)
				assert.Equal(t, expectedServer.OsType, server.OsType)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetServerByIpAddress(t *testing.T) {
	expectedServer := model.Server{ID: 3, IpAddress: "192.168.1.3", Name: "cache-1", Status: model.ServerStatusDown}

	tests := []struct {
		name          string
		ipAddress     string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:      "Success",
			ipAddress: "192.168.1.3",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectByIpQuery)).
					WithArgs("192.168.1.3", 1).
					WillReturnRows(serverRow(sqlmock.NewRows(serverColumns), expectedServer))
			},
		},
		{
			name:      "Error Not Found",
			ipAddress: "192.168.1.4",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectByIpQuery)).
					WithArgs("192.168.1.4", 1).
					WillReturnRows(sqlmock.NewRows(serverColumns))
			},
			expectedError: apperrors.ErrServerNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)

			tc.mockSetup(mock)

			server, err := repo.GetServerByIpAddress(context.Background(), tc.ipAddress)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, expectedServer.ID, server.ID)
				assert.Equal(t, expectedServer.Name, server.Name)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetServerByIpAddressExcludingId(t *testing.T) {
	query := `SELECT * FROM "servers" WHERE ip_address = $1 AND id <> $2 ORDER BY "servers"."id" LIMIT $3`
	other := model.Server{ID: 4, IpAddress: "10.1.1.1"}

	t.Run("Success another server holds the ip", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("10.1.1.1", uint(1), 1).
			WillReturnRows(serverRow(sqlmock.NewRows(serverColumns), other))

		server, err := repo.GetServerByIpAddressExcludingId(context.Background(), "10.1.1.1", 1)

		require.NoError(t, err)
		assert.Equal(t, uint(4), server.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error only the excluded server holds the ip", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("10.1.1.1", uint(4), 1).
			WillReturnRows(sqlmock.NewRows(serverColumns))

		_, err := repo.GetServerByIpAddressExcludingId(context.Background(), "10.1.1.1", 4)

		assert.ErrorIs(t, err, apperrors.ErrServerNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSaveServer(t *testing.T) {
	testErr := errors.New("test error")
	newServer := model.Server{IpAddress: "127.0.0.1", Name: "local", MemorySize: "8 GB", OsType: "Linux", Status: model.ServerStatusUp}
	existingServer := model.Server{ID: 5, IpAddress: "127.0.0.2", Name: "local-2", MemorySize: "16 GB", OsType: "Windows", Status: model.ServerStatusDown}

	tests := []struct {
		name          string
		input         model.Server
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedID    uint
		expectedError error
	}{
		{
			name:  "Success insert new server",
			input: newServer,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(insertServerQuery)).
					WithArgs(newServer.IpAddress, newServer.Name, newServer.MemorySize, newServer.OsType, newServer.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
				mock.ExpectCommit()
			},
			expectedID: 11,
		},
		{
			name:  "Success overwrite existing server",
			input: existingServer,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "servers" SET "ip_address"=$1,"name"=$2,"memory_size"=$3,"os_type"=$4,"status"=$5`)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedID: 5,
		},
		{
			name:  "Error ip address unique constraint",
			input: newServer,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(insertServerQuery)).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "servers_ip_address_key"})
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrIpAddressAlreadyExists,
		},
		{
			name:  "Error Generic Database Error",
			input: newServer,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(insertServerQuery)).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)

			tc.mockSetup(mock)

			saved, err := repo.SaveServer(context.Background(), tc.input)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedID, saved.ID)
				assert.Equal(t, tc.input.IpAddress, saved.IpAddress)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSaveServers(t *testing.T) {
	servers := []model.Server{
		{IpAddress: "1.1.1.1", Name: "a", Status: model.ServerStatusUp},
		{IpAddress: "2.2.2.2", Name: "b", Status: model.ServerStatusDown},
	}
	query := `INSERT INTO "servers" ("ip_address","name","memory_size","os_type","status","created_at","updated_at") VALUES ($1,$2,$3,$4,$5,$6,$7),($8,$9,$10,$11,$12,$13,$14) RETURNING "id"`

	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
		mock.ExpectCommit()

		saved, err := repo.SaveServers(context.Background(), servers)

		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.Equal(t, uint(1), saved[0].ID)
		assert.Equal(t, uint(2), saved[1].ID)
		assert.Zero(t, servers[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error ip address unique constraint", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "servers_ip_address_key"})
		mock.ExpectRollback()

		_, err := repo.SaveServers(context.Background(), servers)

		assert.ErrorIs(t, err, apperrors.ErrIpAddressAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success empty input", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)

		saved, err := repo.SaveServers(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, saved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteServerById(t *testing.T) {
	query := `DELETE FROM "servers" WHERE id = $1`
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(uint(3)).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(uint(3)).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrServerNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)

			tc.mockSetup(mock)

			err := repo.DeleteServerById(context.Background(), 3)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCountServersByStatus(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewServerRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, COUNT(*) AS count FROM "servers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow(model.ServerStatusUp, 4).
			AddRow(model.ServerStatusDown, 1))

	counts, err := repo.CountServersByStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{model.ServerStatusUp: 4, model.ServerStatusDown: 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransaction(t *testing.T) {
	t.Run("Commit when callback succeeds", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(insertServerQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		err := repo.Transaction(context.Background(), func(txRepo ServerRepository) error {
			_, e := txRepo.SaveServers(context.Background(), []model.Server{{IpAddress: "1.1.1.1"}})
			return e
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback when callback fails", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewServerRepository(db)
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := repo.Transaction(context.Background(), func(txRepo ServerRepository) error {
			return apperrors.ErrIpAddressAlreadyExists
		})

		assert.ErrorIs(t, err, apperrors.ErrIpAddressAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

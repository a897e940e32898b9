package response

import (
	"VCS_Server_Manager/internal/server-service/model"
	"time"
)

type ServerResponse struct {
	ID         uint      `json:"id"`
	IpAddress  string    `json:"ip_address"`
	Name       string    `json:"name"`
	MemorySize string    `json:"memory_size"`
	OsType     string    `json:"os_type"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewServerResponse(server model.Server) ServerResponse {
	return ServerResponse{
		ID:         server.ID,
		IpAddress:  server.IpAddress,
		Name:       server.Name,
		MemorySize: server.MemorySize,
		OsType:     server.OsType,
		Status:     server.Status,
		CreatedAt:  server.CreatedAt,
		UpdatedAt:  server.UpdatedAt,
	}
}

func NewServerResponses(servers []model.Server) []ServerResponse {
	res := make([]ServerResponse, 0, len(servers))
	for _, server := range servers {
		res = append(res, NewServerResponse(server))
	}
	return res
}

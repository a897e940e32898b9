package request

type ServerRequest struct {
	IpAddress  string `json:"ip_address" binding:"required,ipv4" validate:"required,ipv4"`
	Name       string `json:"name" binding:"required" validate:"required"`
	MemorySize string `json:"memory_size" binding:"required" validate:"required"`
	OsType     string `json:"os_type" binding:"required" validate:"required"`
	Status     string `json:"status" binding:"required,oneof=UP DOWN" validate:"required,oneof=UP DOWN"`
}

type SaveServersRequest struct {
	Servers []ServerRequest `json:"servers" binding:"required,dive"`
}

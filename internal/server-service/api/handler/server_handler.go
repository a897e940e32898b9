package handler

import (
	"VCS_Server_Manager/internal/server-service/api/dto/request"
	"VCS_Server_Manager/internal/server-service/api/dto/response"
	apperrors "VCS_Server_Manager/internal/server-service/errors"
	"VCS_Server_Manager/internal/server-service/model"
	"VCS_Server_Manager/internal/server-service/service"
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	defaultPage = "0"
	defaultSize = "10"

	errorTypeValidation = "VALIDATION_ERROR"
)

type ServerHandler interface {
	GetServers() gin.HandlerFunc
	GetServerById() gin.HandlerFunc
	GetServerByIpAddress() gin.HandlerFunc
	PingServer() gin.HandlerFunc
	CreateServer() gin.HandlerFunc
	SaveServers() gin.HandlerFunc
	UpdateServer() gin.HandlerFunc
	DeleteServer() gin.HandlerFunc
	ImportServersFromExcelFile() gin.HandlerFunc
	ExportServersToExcelFile() gin.HandlerFunc
	ReportServersStatus() gin.HandlerFunc
}

type serverHandler struct {
	logger        Logger
	serverService service.ServerService
	validator     *validator.Validate
}

func (*serverHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "ipv4":
		return fmt.Sprintf("The %s field is not a valid ipv4", err.Field())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (s *serverHandler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{
		Message: message,
		Type:    errorTypeValidation,
		Path:    c.Request.URL.Path,
	})
}

func (s *serverHandler) bindingError(c *gin.Context, err error) {
	var validatorError validator.ValidationErrors
	if errors.As(err, &validatorError) {
		s.badRequest(c, s.formatValidationError(validatorError[0]))
		return
	}
	s.badRequest(c, "Invalid request body")
}

// serviceError maps every error kind the service can return onto a status code.
func (s *serverHandler) serviceError(c *gin.Context, err error, errDescription string) {
	kind := apperrors.KindOf(err)
	res := response.ErrorResponse{
		Message: apperrors.MessageOf(err),
		Type:    kind.String(),
		Path:    c.Request.URL.Path,
	}
	switch kind {
	case apperrors.KindNotFound:
		c.JSON(http.StatusNotFound, res)
	case apperrors.KindConflict:
		c.JSON(http.StatusBadRequest, res)
	case apperrors.KindInternal:
		s.logger.LoggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, res)
	case apperrors.KindUnknown:
		s.logger.LoggingError(c, err, errDescription, zap.ErrorLevel)
		res.Message = "Internal server error"
		res.Type = apperrors.KindInternal.String()
		c.JSON(http.StatusInternalServerError, res)
	}
}

func (s *serverHandler) parseId(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		s.badRequest(c, "Server id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func (s *serverHandler) parsePagination(c *gin.Context) (page int, size int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", defaultPage))
	if err != nil || page < 0 {
		s.badRequest(c, "Page must be a non-negative integer")
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", defaultSize))
	if err != nil || size < 1 {
		s.badRequest(c, "Size must be a positive integer")
		return 0, 0, false
	}
	if page > math.MaxInt/size {
		s.badRequest(c, "Page is too large for the requested size")
		return 0, 0, false
	}
	return page, size, true
}

func toServer(req request.ServerRequest) model.Server {
	return model.Server{
		IpAddress:  req.IpAddress,
		Name:       req.Name,
		MemorySize: req.MemorySize,
		OsType:     req.OsType,
		Status:     req.Status,
	}
}

func (s *serverHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, size, ok := s.parsePagination(c)
		if !ok {
			return
		}
		servers, err := s.serverService.GetServers(c, page, size)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServers: %w", err)
			s.serviceError(c, err, "failed to get servers")
			return
		}
		c.JSON(http.StatusOK, response.NewServerResponses(servers))
	}
}

func (s *serverHandler) GetServerById() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := s.parseId(c)
		if !ok {
			return
		}
		server, err := s.serverService.GetServerById(c, id)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServerById: %w", err)
			s.serviceError(c, err, fmt.Sprintf("failed to get server %d", id))
			return
		}
		c.JSON(http.StatusOK, response.NewServerResponse(server))
	}
}

func (s *serverHandler) GetServerByIpAddress() gin.HandlerFunc {
	return func(c *gin.Context) {
		ipAddress := c.Param("ip")
		server, err := s.serverService.GetServerByIpAddress(c, ipAddress)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServerByIpAddress: %w", err)
			s.serviceError(c, err, fmt.Sprintf("failed to get server with ip address %s", ipAddress))
			return
		}
		c.JSON(http.StatusOK, response.NewServerResponse(server))
	}
}

func (s *serverHandler) PingServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ipAddress := c.Param("ip")
		server, err := s.serverService.PingServer(c, ipAddress)
		if err != nil {
			err = fmt.Errorf("ServerHandler.PingServer: %w", err)
			s.serviceError(c, err, fmt.Sprintf("failed to ping server %s", ipAddress))
			return
		}
		c.JSON(http.StatusOK, response.NewServerResponse(server))
	}
}

func (s *serverHandler) CreateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.bindingError(c, err)
			return
		}
		created, err := s.serverService.CreateServer(c, toServer(req))
		if err != nil {
			err = fmt.Errorf("ServerHandler.CreateServer: %w", err)
			s.serviceError(c, err, "failed to create server")
			return
		}
		c.JSON(http.StatusCreated, response.NewServerResponse(created))
	}
}

func (s *serverHandler) SaveServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.SaveServersRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.bindingError(c, err)
			return
		}
		servers := make([]model.Server, 0, len(req.Servers))
		for _, serverReq := range req.Servers {
			servers = append(servers, toServer(serverReq))
		}
		saved, err := s.serverService.CreateServers(c, servers)
		if err != nil {
			err = fmt.Errorf("ServerHandler.SaveServers: %w", err)
			s.serviceError(c, err, "failed to save servers")
			return
		}
		c.JSON(http.StatusOK, response.SaveServersResponse{
			SavedCount: len(saved),
		})
	}
}

func (s *serverHandler) UpdateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := s.parseId(c)
		if !ok {
			return
		}
		var req request.ServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.bindingError(c, err)
			return
		}
		server := toServer(req)
		server.ID = id
		updated, err := s.serverService.UpdateServer(c, server)
		if err != nil {
			err = fmt.Errorf("ServerHandler.UpdateServer: %w", err)
			s.serviceError(c, err, fmt.Sprintf("failed to update server %d", id))
			return
		}
		c.JSON(http.StatusOK, response.NewServerResponse(updated))
	}
}

func (s *serverHandler) DeleteServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := s.parseId(c)
		if !ok {
			return
		}
		deleted, err := s.serverService.DeleteServer(c, id)
		if err != nil {
			err = fmt.Errorf("ServerHandler.DeleteServer: %w", err)
			s.serviceError(c, err, fmt.Sprintf("failed to delete server %d", id))
			return
		}
		c.JSON(http.StatusOK, response.DeleteServerResponse{
			Deleted: deleted,
		})
	}
}

func (s *serverHandler) ReportServersStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.bindingError(c, err)
			return
		}
		err := s.serverService.ReportServersStatus(c, req.Email)
		if errors.Is(err, service.ErrMailNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{
				Message: "Mail sender is not configured",
				Type:    apperrors.KindInternal.String(),
				Path:    c.Request.URL.Path,
			})
			return
		}
		if err != nil {
			err = fmt.Errorf("ServerHandler.ReportServersStatus: %w", err)
			s.serviceError(c, err, "failed to report servers status")
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

var excelColumns = []string{"id", "ip_address", "name", "memory_size", "os_type", "status", "created_at", "updated_at"}

func (s *serverHandler) ExportServersToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, size, ok := s.parsePagination(c)
		if !ok {
			return
		}
		servers, err := s.serverService.GetServers(c, page, size)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.serviceError(c, err, "failed to export servers")
			return
		}
		file, err := s.generateExcelFile(servers)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.serviceError(c, err, "failed to export servers")
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("servers-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		c.Status(http.StatusOK)
		if err = file.Write(c.Writer); err != nil {
			s.logger.LoggingError(c, fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err), "failed to write excel file", zap.ErrorLevel)
		}
	}
}

func (s *serverHandler) generateExcelFile(servers []model.Server) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Servers"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}
	headers := make([]interface{}, 0, len(excelColumns))
	for _, column := range excelColumns {
		headers = append(headers, column)
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}
	for i, server := range servers {
		rowData := []interface{}{
			server.ID,
			server.IpAddress,
			server.Name,
			server.MemorySize,
			server.OsType,
			server.Status,
			server.CreatedAt.Format("2006-01-02 15:04:05"),
			server.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &rowData); err != nil {
			return nil, err
		}
	}
	return f, nil
}

var (
	errSheetNotFound         = errors.New("sheet not found")
	errEmptyFile             = errors.New("file is empty")
	errMissingRequiredColumn = errors.New("missing required column")
)

type invalidRowError struct {
	row     int
	message string
}

func (e *invalidRowError) Error() string {
	return fmt.Sprintf("Invalid row %d: %s", e.row, e.message)
}

// ImportServersFromExcelFile saves the sheet as one batch; a single invalid row rejects the file.
func (s *serverHandler) ImportServersFromExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			s.badRequest(c, "Invalid request body")
			return
		}
		if ext := filepath.Ext(file.Filename); ext != ".xlsx" {
			s.badRequest(c, "File must be an xlsx file")
			return
		}

		servers, err := s.extractServersFromExcelFile(file, c.Query("sheet_name"))
		if err != nil {
			var rowErr *invalidRowError
			switch {
			case errors.As(err, &rowErr):
				s.badRequest(c, rowErr.Error())
			case errors.Is(err, errEmptyFile):
				s.badRequest(c, "File is empty")
			case errors.Is(err, errSheetNotFound):
				s.badRequest(c, "Sheet not found")
			case errors.Is(err, errMissingRequiredColumn):
				s.badRequest(c, err.Error())
			default:
				err = fmt.Errorf("ServerHandler.ImportServersFromExcelFile: %w", err)
				s.logger.LoggingError(c, err, "failed to read excel file", zap.WarnLevel)
				s.badRequest(c, "File is not a valid xlsx file")
			}
			return
		}

		saved, err := s.serverService.CreateServers(c, servers)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ImportServersFromExcelFile: %w", err)
			s.serviceError(c, err, "failed to import servers")
			return
		}
		c.JSON(http.StatusOK, response.SaveServersResponse{
			SavedCount: len(saved),
		})
	}
}

func (s *serverHandler) extractServersFromExcelFile(file *multipart.FileHeader, importSheet string) ([]model.Server, error) {
	fileContent, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer fileContent.Close()

	xlsx, err := excelize.OpenReader(fileContent)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()

	if importSheet == "" {
		importSheet = xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	} else if index, _ := xlsx.GetSheetIndex(importSheet); index == -1 {
		return nil, errSheetNotFound
	}

	rows, err := xlsx.GetRows(importSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errEmptyFile
	}

	columnMap := make(map[string]int)
	for i, cell := range rows[0] {
		columnMap[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	for _, requiredColumn := range []string{"ip_address", "name", "memory_size", "os_type", "status"} {
		if _, ok := columnMap[requiredColumn]; !ok {
			return nil, fmt.Errorf("%w %s", errMissingRequiredColumn, requiredColumn)
		}
	}
	cell := func(row []string, column string) string {
		i := columnMap[column]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	servers := make([]model.Server, 0, len(rows)-1)
	for i, row := range rows[1:] {
		req := request.ServerRequest{
			IpAddress:  cell(row, "ip_address"),
			Name:       cell(row, "name"),
			MemorySize: cell(row, "memory_size"),
			OsType:     cell(row, "os_type"),
			Status:     strings.ToUpper(cell(row, "status")),
		}
		if err = s.validator.Struct(req); err != nil {
			var validatorError validator.ValidationErrors
			message := err.Error()
			if errors.As(err, &validatorError) {
				message = s.formatValidationError(validatorError[0])
			}
			return nil, &invalidRowError{row: i + 2, message: message}
		}
		servers = append(servers, toServer(req))
	}
	return servers, nil
}

func NewServerHandler(logger Logger, serverService service.ServerService) ServerHandler {
	return &serverHandler{
		logger:        logger,
		serverService: serverService,
		validator:     validator.New(),
	}
}

package service

import (
	"VCS_Server_Manager/internal/server-service/model"
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrMailNotConfigured = errors.New("mail sender is not configured")

type serversStatusSummary struct {
	Total int64
	Up    int64
	Down  int64
}

func (s *serverService) ReportServersStatus(ctx context.Context, mail string) error {
	if s.mailSender == nil {
		return fmt.Errorf("ServerService.ReportServersStatus: %w", ErrMailNotConfigured)
	}
	counts, err := s.serverRepository.CountServersByStatus(ctx)
	if err != nil {
		return fmt.Errorf("ServerService.ReportServersStatus: %w", err)
	}
	summary := serversStatusSummary{
		Up:   counts[model.ServerStatusUp],
		Down: counts[model.ServerStatusDown],
	}
	for _, c := range counts {
		summary.Total += c
	}
	subject := fmt.Sprintf("Servers Status Report %s", time.Now().Format("2006-01-02"))
	err = s.mailSender.SendMail([]string{mail}, subject, generateHTMLBody(summary), generateTextMailBody(summary), nil)
	if err != nil {
		return fmt.Errorf("ServerService.ReportServersStatus: %w", err)
	}
	return nil
}

func generateTextMailBody(summary serversStatusSummary) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Servers: %d\n"+
			"Up: %d\n"+
			"Down: %d",
		summary.Total,
		summary.Up,
		summary.Down,
	)
}

func generateHTMLBody(summary serversStatusSummary) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Up:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Down:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat, summary.Total, summary.Up, summary.Down)
}

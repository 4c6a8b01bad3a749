package usecase

import (
	"context"
	"os"
	"runtime"
	"strconv"

	"obsidianiq-forms-api/config"
)

// EmailConfigReport describes the mail settings without revealing credentials.
type EmailConfigReport struct {
	SmtpServer         string `json:"smtpServer"`
	SmtpPort           string `json:"smtpPort"`
	EnableTLS          bool   `json:"enableTls"`
	FromEmail          string `json:"fromEmail"`
	ToEmail            string `json:"toEmail"`
	HasSmtpUsername    bool   `json:"hasSmtpUsername"`
	HasSmtpPassword    bool   `json:"hasSmtpPassword"`
	SmtpUsernameLength int    `json:"smtpUsernameLength"`
	SmtpPasswordLength int    `json:"smtpPasswordLength"`
}

// EnvironmentReport describes the running process. Credentials are reported by presence only.
type EnvironmentReport struct {
	EnvironmentName string `json:"environmentName"`
	MachineName     string `json:"machineName"`
	ProcessorCount  int    `json:"processorCount"`
	WorkingSet      uint64 `json:"workingSet"`
	HasSmtpUsername bool   `json:"hasSmtpUsername"`
	HasSmtpPassword bool   `json:"hasSmtpPassword"`
}

type HealthUsecase interface {
	Check(ctx context.Context, service string) map[string]string
	EmailConfig(ctx context.Context) EmailConfigReport
	Environment(ctx context.Context) EnvironmentReport
}

type healthUsecase struct {
	cfg *config.Config
}

func NewHealthUsecase(cfg *config.Config) HealthUsecase {
	return &healthUsecase{cfg: cfg}
}

func (u *healthUsecase) Check(ctx context.Context, service string) map[string]string {
	status := map[string]string{
		"status": "healthy",
	}
	if service != "" {
		status["service"] = service
	}
	return status
}

func (u *healthUsecase) EmailConfig(ctx context.Context) EmailConfigReport {
	return EmailConfigReport{
		SmtpServer:         u.cfg.SMTPHost,
		SmtpPort:           strconv.Itoa(u.cfg.SMTPPort),
		EnableTLS:          u.cfg.SMTPEnableTLS,
		FromEmail:          u.cfg.SMTPFromEmail,
		ToEmail:            u.cfg.ContactEmailTo,
		HasSmtpUsername:    u.cfg.SMTPUsername != "",
		HasSmtpPassword:    u.cfg.SMTPPassword != "",
		SmtpUsernameLength: len(u.cfg.SMTPUsername),
		SmtpPasswordLength: len(u.cfg.SMTPPassword),
	}
}

func (u *healthUsecase) Environment(ctx context.Context) EnvironmentReport {
	hostname, _ := os.Hostname()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	env := u.cfg.GinMode
	if env == "" {
		env = "debug"
	}
	return EnvironmentReport{
		EnvironmentName: env,
		MachineName:     hostname,
		ProcessorCount:  runtime.NumCPU(),
		WorkingSet:      mem.Sys,
		HasSmtpUsername: u.cfg.SMTPUsername != "",
		HasSmtpPassword: u.cfg.SMTPPassword != "",
	}
}

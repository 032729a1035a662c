package appmanager

import (
	"fmt"
	"os"
	"sort"
	"sync"

	loanapi "KasfoMonitor/api/loan"
	"KasfoMonitor/internal/jobs"
	"KasfoMonitor/internal/logger"
	"KasfoMonitor/internal/serviceiface"
	"KasfoMonitor/internal/session"

	"gopkg.in/yaml.v3"
)

// sessions is shared by the HTTP service and the sweeper.
var sessions = session.NewManager()

// Sessions returns the process-wide session store.
func Sessions() *session.Manager {
	return sessions
}

var serviceConstructors = map[string]func(map[string]interface{}) serviceiface.Service{
	"logger": func(cfg map[string]interface{}) serviceiface.Service {
		return logger.NewLoggerService(cfg)
	},
	"cron": func(cfg map[string]interface{}) serviceiface.Service {
		return jobs.NewCronService(cfg, sessions)
	},
	"loan": func(cfg map[string]interface{}) serviceiface.Service {
		return loanapi.NewLoanService(cfg, sessions)
	},
}

// ------------------- MANAGER -------------------

type AppManager struct {
	services []serviceiface.Service
	mu       sync.Mutex
}

func NewAppManager() *AppManager {
	return &AppManager{
		services: make([]serviceiface.Service, 0),
	}
}

func (am *AppManager) RegisterService(s serviceiface.Service) {
	am.mu.Lock()
	defer am.mu.Unlock()
	am.services = append(am.services, s)
}

// StartAll starts services in registration order and stops at the first failure.
func (am *AppManager) StartAll() error {
	am.mu.Lock()
	defer am.mu.Unlock()

	for _, service := range am.services {
		fmt.Println("Starting service:", service.Name())
		if err := service.Start(); err != nil {
			return fmt.Errorf("failed to start service %s: %w", service.Name(), err)
		}
	}
	return nil
}

// StopAll stops services in reverse order and reports the first failure after
// trying every service.
func (am *AppManager) StopAll() error {
	am.mu.Lock()
	defer am.mu.Unlock()

	var firstErr error
	for i := len(am.services) - 1; i >= 0; i-- {
		svc := am.services[i]
		if err := svc.Stop(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to stop service %s: %w", svc.Name(), err)
		}
	}
	return firstErr
}

// ------------------- YAML CONFIG -------------------

type ServiceSequencer struct {
	Services []ServiceConfig `yaml:"services"`
}

type ServiceConfig struct {
	Name       string                 `yaml:"name"`
	StartOrder int                    `yaml:"start_order"`
	Config     map[string]interface{} `yaml:"config"`
}

func LoadServiceSequence(path string) ([]ServiceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseServiceSequence(data)
}

// ParseServiceSequence decodes a services.yaml document sorted by start_order.
func ParseServiceSequence(data []byte) ([]ServiceConfig, error) {
	var seq ServiceSequencer
	if err := yaml.Unmarshal(data, &seq); err != nil {
		return nil, fmt.Errorf("parse service sequence: %w", err)
	}

	sort.SliceStable(seq.Services, func(i, j int) bool {
		return seq.Services[i].StartOrder < seq.Services[j].StartOrder
	})
	for i := range seq.Services {
		if seq.Services[i].Config == nil {
			seq.Services[i].Config = map[string]interface{}{}
		}
	}
	return seq.Services, nil
}

// AutoRegisterServices builds every known service in configs and skips the
// rest. The logger, if present, becomes the global audit logger.
func (am *AppManager) AutoRegisterServices(configs []ServiceConfig) []string {
	var unknown []string
	for _, svc := range configs {
		constructor, ok := serviceConstructors[svc.Name]
		if !ok {
			unknown = append(unknown, svc.Name)
			continue
		}
		service := constructor(svc.Config)
		am.RegisterService(service)
		if l, ok := service.(*logger.LoggerService); ok {
			logger.SetGlobalLogger(l)
		}
	}
	return unknown
}

func (am *AppManager) GetServiceByName(name string) serviceiface.Service {
	am.mu.Lock()
	defer am.mu.Unlock()
	for _, svc := range am.services {
		if svc.Name() == name {
			return svc
		}
	}
	return nil
}

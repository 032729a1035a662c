package appmanager

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const servicesYAML = `
services:
  - name: loan
    start_order: 3
    config:
      port: 7143
      max_upload_mb: 16
  - name: logger
    start_order: 1
    config:
      folder_path: ./logs
  - name: cron
    start_order: 2
  - name: fx
    start_order: 4
`

type fakeService struct {
	name     string
	startErr error
	stopErr  error
	events   *[]string
}

func (f *fakeService) Name() string { return f.name }
func (f *fakeService) Start() error {
	*f.events = append(*f.events, "start "+f.name)
	return f.startErr
}
func (f *fakeService) Stop() error {
	*f.events = append(*f.events, "stop "+f.name)
	return f.stopErr
}

func TestParseServiceSequence(t *testing.T) {
	cfgs, err := ParseServiceSequence([]byte(servicesYAML))
	require.NoError(t, err)
	require.Len(t, cfgs, 4)

	names := []string{cfgs[0].Name, cfgs[1].Name, cfgs[2].Name, cfgs[3].Name}
	assert.Equal(t, []string{"logger", "cron", "loan", "fx"}, names)
	assert.Equal(t, 7143, cfgs[2].Config["port"])
	assert.NotNil(t, cfgs[1].Config, "missing config becomes an empty map")

	_, err = ParseServiceSequence([]byte("services: ["))
	assert.Error(t, err)
}

func TestAutoRegisterServices(t *testing.T) {
	cfgs, err := ParseServiceSequence([]byte(servicesYAML))
	require.NoError(t, err)

	am := NewAppManager()
	unknown := am.AutoRegisterServices(cfgs)
	assert.Equal(t, []string{"fx"}, unknown)
	assert.NotNil(t, am.GetServiceByName("logger"))
	assert.NotNil(t, am.GetServiceByName("cron"))
	assert.NotNil(t, am.GetServiceByName("loan"))
	assert.Nil(t, am.GetServiceByName("fx"))
}

func TestStartStopOrder(t *testing.T) {
	var events []string
	am := NewAppManager()
	am.RegisterService(&fakeService{name: "a", events: &events})
	am.RegisterService(&fakeService{name: "b", events: &events, stopErr: errors.New("boom")})
	am.RegisterService(&fakeService{name: "c", events: &events})

	require.NoError(t, am.StartAll())
	err := am.StopAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "b")
	assert.Equal(t, []string{"start a", "start b", "start c", "stop c", "stop b", "stop a"}, events)
}

func TestStartAllStopsAtFailure(t *testing.T) {
	var events []string
	am := NewAppManager()
	am.RegisterService(&fakeService{name: "a", events: &events, startErr: errors.New("port in use")})
	am.RegisterService(&fakeService{name: "b", events: &events})

	err := am.StartAll()
	require.Error(t, err)
	assert.Equal(t, []string{"start a"}, events)
}

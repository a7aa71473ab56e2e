package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	name     string
	deps     []string
	initErr  error
	startErr error
	stopErr  error
	log      *[]string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(args ...any) error {
	*f.log = append(*f.log, "init:"+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	return f.startErr
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop:"+f.name)
	return f.stopErr
}

func TestHub_DependencyOrder(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "watcher", deps: []string{"status"}, log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "status", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "audio", log: &log}))

	require.NoError(t, h.InitAll())
	assert.Equal(t, []string{"audio", "status", "watcher"}, h.Order())

	log = nil
	require.NoError(t, h.StartAll())
	require.NoError(t, h.StopAll())
	assert.Equal(t, []string{
		"start:audio", "start:status", "start:watcher",
		"stop:watcher", "stop:status", "stop:audio",
	}, log)
}

func TestHub_DuplicateRegister(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "a", log: &log}))
	assert.Error(t, h.Register(&fakeService{name: "a", log: &log}))
}

func TestHub_Cycle(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "a", deps: []string{"b"}, log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log}))
	assert.ErrorIs(t, h.InitAll(), ErrCycle)
}

func TestHub_MissingDependency(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "a", deps: []string{"ghost"}, log: &log}))
	err := h.InitAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestHub_InitRollback(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "a", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, initErr: boom, log: &log}))

	err := h.InitAll()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"init:a", "init:b", "stop:a"}, log)
}

func TestHub_StartRollback(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "a", log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, startErr: boom, log: &log}))
	require.NoError(t, h.InitAll())

	log = nil
	assert.ErrorIs(t, h.StartAll(), boom)
	assert.Equal(t, []string{"start:a", "start:b", "stop:a"}, log)

	// Nothing left to stop
	log = nil
	assert.NoError(t, h.StopAll())
	assert.Empty(t, log)
}

func TestHub_StopAllCombinesErrors(t *testing.T) {
	var log []string
	e1, e2 := errors.New("e1"), errors.New("e2")
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "a", stopErr: e1, log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "b", stopErr: e2, log: &log}))
	require.NoError(t, h.InitAll())
	require.NoError(t, h.StartAll())

	err := h.StopAll()
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)
}

func TestHub_SharedDependencyInitsOnce(t *testing.T) {
	var log []string
	h := NewHub(nil)
	require.NoError(t, h.Register(&fakeService{name: "theme", deps: []string{"status", "audio"}, log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "audio", deps: []string{"status"}, log: &log}))
	require.NoError(t, h.Register(&fakeService{name: "status", log: &log}))

	require.NoError(t, h.InitAll())
	assert.Equal(t, []string{"status", "audio", "theme"}, h.Order())
	assert.Equal(t, []string{"init:status", "init:audio", "init:theme"}, log)
}

package audio

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Player is the minimal audio interface used by hosts
type Player interface {
	PlayPress() bool
	PlayRelease() bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioService wraps SoundManager as a service.Service and a Player
// A missing audio backend disables the service without failing startup
type AudioService struct {
	manager  *SoundManager
	logger   *zap.Logger
	enabled  bool
	disabled atomic.Bool
}

// NewService creates an audio service
func NewService(logger *zap.Logger) *AudioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AudioService{
		manager: NewSoundManager(),
		logger:  logger.Named("audio"),
	}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: bool - enable sound (default off)
func (s *AudioService) Init(args ...any) error {
	if len(args) > 0 {
		if on, ok := args[0].(bool); ok {
			s.enabled = on
		}
	}
	if !s.enabled {
		s.disabled.Store(true)
	}
	return nil
}

// Start implements Service, opening the speaker; failure is logged and non-fatal
func (s *AudioService) Start() error {
	if s.disabled.Load() {
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		s.logger.Warn("audio initialization failed", zap.Error(err))
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	s.manager.Cleanup()
	return nil
}

// IsDisabled returns true if audio is unavailable or off
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// PlayPress implements Player, a no-op while disabled
func (s *AudioService) PlayPress() bool {
	if s.disabled.Load() {
		return false
	}
	return s.manager.PlayPress()
}

// PlayRelease implements Player, a no-op while disabled
func (s *AudioService) PlayRelease() bool {
	if s.disabled.Load() {
		return false
	}
	return s.manager.PlayRelease()
}

// ToggleMute implements Player
func (s *AudioService) ToggleMute() bool {
	return s.manager.ToggleMute()
}

// IsMuted implements Player
func (s *AudioService) IsMuted() bool {
	return s.manager.IsMuted()
}

// IsRunning implements Player
func (s *AudioService) IsRunning() bool {
	return !s.disabled.Load() && s.manager.IsRunning()
}

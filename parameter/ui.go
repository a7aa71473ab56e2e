package parameter

import "time"

// Typewriter pacing
const (
	TypewriterTypeDelay   = 100 * time.Millisecond
	TypewriterDeleteDelay = 50 * time.Millisecond
	TypewriterWordPause   = 500 * time.Millisecond
	TypewriterWait        = 2000 * time.Millisecond
)

// TypewriterWords is the default rotation shown under the field
var TypewriterWords = []string{
	"AI/ML Developer",
	"Python Engineer",
	"Deep Learning Specialist",
	"Computer Vision Expert",
	"Problem Solver",
}

// Logging
const (
	LogDir      = "logs"
	LogFileName = "antigravity.log"
	MaxLogSize  = 10 * 1024 * 1024
)

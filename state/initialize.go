package state

import (
	"time"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		DefaultTheme: []byte(`name: Starter
prefix: kit
colors:
  ink: "#1A1A2E"
  paper: ivory
  accent: "#0F3460"
  highlight: "#E94560"
space:
  unit: rem
  scale: [0.25, 0.5, 1, 1.5, 2, 3]
fonts:
  body: ["Source Serif 4", Georgia, serif]
  heading: ["Source Sans 3", Helvetica, sans-serif]
  mono: ["JetBrains Mono", monospace]
breakpoints:
  sm: 640
  md: 768
  lg: 1024
radius:
  sm: 2
  md: 6
  lg: 12
`),
	}
}

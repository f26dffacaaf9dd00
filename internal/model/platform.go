package model

type Platform string

const (
	PlatformShell Platform = "shell"
	// PlatformNode is the generic scripting runtime: it receives the snippet as JSON.
	PlatformNode Platform = "node"
)

func (p Platform) String() string {
	return string(p)
}

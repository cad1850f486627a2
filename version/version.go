package version

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/metafates/gache"
	"github.com/tinyplay/tinyplay/filesystem"
	"github.com/tinyplay/tinyplay/where"
)

// MinimumPipeline is the oldest mpv release whose IPC echoes request_id.
const MinimumPipeline = "0.33.0"

// pipelineCacher maps an executable path to the version it reported.
var pipelineCacher = gache.New[map[string]string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "pipeline.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Pipeline returns the version reported by `binary --version`, cached for two days.
func Pipeline(binary string) (string, error) {
	cached, expired, err := pipelineCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != nil {
		if v, ok := cached[binary]; ok {
			return v, nil
		}
	}

	out, err := exec.Command(binary, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", binary, err)
	}

	v, err := Extract(string(out))
	if err != nil {
		return "", err
	}

	if expired || cached == nil {
		cached = make(map[string]string)
	}
	cached[binary] = v
	_ = pipelineCacher.Set(cached)

	return v, nil
}

// Supported reports whether v is at least MinimumPipeline.
func Supported(v string) (bool, error) {
	comp, err := Compare(v, MinimumPipeline)
	if err != nil {
		return false, err
	}
	return comp >= 0, nil
}

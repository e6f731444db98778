// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/tinge-cli/tinge/filesystem"
	"github.com/tinge-cli/tinge/util"
	"github.com/tinge-cli/tinge/where"
)

const releasesURL = "https://api.github.com/repos/tinge-cli/tinge/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the most recent stable release version, queried from the
// GitHub releases API and cached for two days to stay clear of rate limits.
func Latest() (string, error) {
	if cached, expired, err := versionCacher.Get(); err == nil && !expired && cached != "" {
		return cached, nil
	}

	resp, err := http.Get(releasesURL)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("release has no tag name")
	}

	version := strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)
	return version, nil
}

package crates

// Crate is the full decoded registry response for one crate: top-level
// metadata plus the crate's versions, categories, and keywords.
//
// The registry returns versions newest-first, so Versions[0] is the latest
// published version of an existing crate.
type Crate struct {
	Crate      CrateMetadata `json:"crate"              yaml:"crate"`
	Versions   []Version     `json:"versions"           yaml:"versions"`
	Categories []Category    `json:"categories"         yaml:"categories"`
	Keywords   []*Keyword    `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// CrateMetadata represents the "crate" object of the registry response.
type CrateMetadata struct {
	ID               string   `json:"id"                      yaml:"id"`
	Name             string   `json:"name"                    yaml:"name"`
	Description      string   `json:"description"             yaml:"description"`
	CreatedAt        string   `json:"created_at"              yaml:"created_at"`
	UpdatedAt        string   `json:"updated_at"              yaml:"updated_at"`
	Documentation    *string  `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Homepage         *string  `json:"homepage,omitempty"      yaml:"homepage,omitempty"`
	Repository       string   `json:"repository"              yaml:"repository"`
	Downloads        int64    `json:"downloads"               yaml:"downloads"`
	RecentDownloads  int64    `json:"recent_downloads"        yaml:"recent_downloads"`
	ExactMatch       bool     `json:"exact_match"             yaml:"exact_match"`
	Categories       []string `json:"categories"              yaml:"categories"`
	Keywords         []string `json:"keywords"                yaml:"keywords"`
	Versions         []int64  `json:"versions"                yaml:"versions"`
	MaxVersion       string   `json:"max_version"             yaml:"max_version"`
	MaxStableVersion string   `json:"max_stable_version"      yaml:"max_stable_version"`
	NewestVersion    string   `json:"newest_version"          yaml:"newest_version"`
}

// Version represents one published version of a crate.
type Version struct {
	ID         int64               `json:"id"                   yaml:"id"`
	Num        string              `json:"num"                  yaml:"num"`
	License    *string             `json:"license,omitempty"    yaml:"license,omitempty"`
	CrateSize  *int64              `json:"crate_size,omitempty" yaml:"crate_size,omitempty"`
	ReadmePath string              `json:"readme_path"          yaml:"readme_path"`
	Yanked     bool                `json:"yanked"               yaml:"yanked"`
	Features   map[string][]string `json:"features,omitempty"   yaml:"features,omitempty"`
}

// Category represents a registry category a crate belongs to.
type Category struct {
	ID          string `json:"id"          yaml:"id"`
	Category    string `json:"category"    yaml:"category"`
	Slug        string `json:"slug"        yaml:"slug"`
	Description string `json:"description" yaml:"description"`
	CreatedAt   string `json:"created_at"  yaml:"created_at"`
	CratesCnt   int64  `json:"crates_cnt"  yaml:"crates_cnt"`
}

// Keyword represents a registry keyword attached to a crate. The registry may
// return null entries inside the keywords array, so they are held by pointer.
type Keyword struct {
	ID        string `json:"id"         yaml:"id"`
	Keyword   string `json:"keyword"    yaml:"keyword"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	CratesCnt int64  `json:"crates_cnt" yaml:"crates_cnt"`
}

// LatestVersion returns the version number of the newest published version,
// i.e. Versions[0].Num. It returns ErrNoVersions if the decoded record has an
// empty version list, which the registry does not produce for existing crates.
func (c *Crate) LatestVersion() (string, error) {
	if len(c.Versions) == 0 {
		return "", ErrNoVersions
	}

	return c.Versions[0].Num, nil
}

// FeaturesForVersion returns the feature map of the version whose number
// exactly equals version. The second return value is false when no version
// matches or the matched version has no features.
func (c *Crate) FeaturesForVersion(version string) (map[string][]string, bool) {
	for _, v := range c.Versions {
		if v.Num == version {
			if v.Features == nil {
				return nil, false
			}

			return v.Features, true
		}
	}

	return nil, false
}

package common

// GuardStatus is the response for guard.status. It mirrors the daemon's
// in-process debounce state so a restart-reset is visible from the CLI.
type GuardStatus struct {
	NextPrayer       string `json:"nextPrayer"`
	MinutesLeft      int    `json:"minutesLeft"`
	Tomorrow         bool   `json:"tomorrow,omitempty"`
	LastLockedPrayer string `json:"lastLockedPrayer,omitempty"`
	WarningSentFor   string `json:"warningSentFor,omitempty"`
	CacheDate        string `json:"cacheDate,omitempty"`
	Location         string `json:"location,omitempty"`
	Offline          bool   `json:"offline,omitempty"`
}

// EmptyResult is a placeholder for methods that return no data.
type EmptyResult struct{}

// VersionResult is the response for system.getVersion.
type VersionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildType string `json:"buildType,omitempty"`
}

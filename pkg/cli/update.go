package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

// defaultUpdateRepo is the GitHub slug releases are published under. Forks
// can point VSEG_UPDATE_REPO at their own releases.
const defaultUpdateRepo = "Fepozopo/vseg"

func updateRepo() string {
	if r := os.Getenv("VSEG_UPDATE_REPO"); r != "" {
		return r
	}
	return defaultUpdateRepo
}

// CheckForUpdates compares the running version against the newest published
// release and replaces the binary in place when the user (or
// VSEG_UPDATE_YES=1, for scripted runs) confirms. vseg is a batch tool, so
// unlike an interactive session there is nothing to hand over to the new
// binary: the current run finishes on the old one and the next invocation
// picks up the update.
func CheckForUpdates() error {
	current, err := semver.Parse(strings.TrimPrefix(Version, "v"))
	if err != nil {
		return fmt.Errorf("built version %q is not semver: %w", Version, err)
	}
	fmt.Printf("Current version: %s\n", current)

	latest, found, err := selfupdate.DetectLatest(updateRepo())
	if err != nil {
		return fmt.Errorf("release lookup failed: %w", err)
	}
	if !found {
		fmt.Printf("No releases found for %s.\n", updateRepo())
		return nil
	}
	if latest.Version.LTE(current) {
		fmt.Printf("vseg is up to date (latest release is %s).\n", latest.Version)
		return nil
	}

	fmt.Printf("Latest version: %s\n", latest.Version)
	if notes := strings.TrimSpace(latest.ReleaseNotes); notes != "" {
		fmt.Println(notes)
	}

	if !envBool("VSEG_UPDATE_YES") {
		answer, perr := promptLine(fmt.Sprintf("Update to %s? (y/N): ", latest.Version))
		if perr != nil {
			return fmt.Errorf("failed reading input: %w", perr)
		}
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Update cancelled.")
			return nil
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	fmt.Printf("Updated to %s. The next vseg run will use the new version.\n", latest.Version)
	return nil
}

// Package compat checks the host runtime before anything touches the terminal.
package compat

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinimumGo is the oldest Go runtime the renderer supports.
const MinimumGo = "1.24"

var ErrUnsupportedRuntime = errors.New("compat: unsupported runtime version")

// CheckRuntime validates the running Go version.
func CheckRuntime() error {
	return Check(runtime.Version(), MinimumGo)
}

// Check reports ErrUnsupportedRuntime when version (as returned by
// runtime.Version) is older than minimum. Development builds always pass.
func Check(version, minimum string) error {
	if strings.HasPrefix(version, "devel") {
		return nil
	}
	raw := strings.TrimPrefix(version, "go")
	// Pre-release toolchains look like go1.25rc1.
	if i := strings.IndexAny(raw, "rb"); i > 0 {
		raw = raw[:i]
	}
	// Experiment suffixes look like go1.24.3 X:boringcrypto.
	if i := strings.IndexByte(raw, ' '); i > 0 {
		raw = raw[:i]
	}

	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: cannot parse %q: %v", ErrUnsupportedRuntime, version, err)
	}
	c, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: mandelterm requires Go %s or newer (current: %s)", ErrUnsupportedRuntime, minimum, version)
	}
	return nil
}

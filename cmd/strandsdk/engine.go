// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"

	"strand-sdk/internal/config"
	"strand-sdk/internal/diag"
	"strand-sdk/internal/discovery"
	"strand-sdk/internal/issue"
	"strand-sdk/internal/locate"
	"strand-sdk/internal/resource"
	"strand-sdk/internal/sdk"
	"strand-sdk/pkg/fspath"
	"strand-sdk/pkg/types"
)

// resolveSDKRoot determines the SDK root, in precedence order: the
// --sdk-path flag, the sdk_path config entry, the locator heuristic.
// User-supplied roots are absolutized so descriptor paths anchor cleanly.
func resolveSDKRoot(res resource.Access, style resource.Style) (types.FilesystemPath, error) {
	if sdkPathFlag != "" {
		return fspath.Abs(types.FilesystemPath(sdkPathFlag))
	}
	if cfg := currentConfig(); cfg.SDKPath != "" {
		return fspath.Abs(types.FilesystemPath(cfg.SDKPath))
	}

	exec, err := os.Executable()
	if err == nil {
		if root, ok := locate.FindRoot(types.FilesystemPath(exec), style, res); ok {
			return root, nil
		}
	}

	return "", issue.NewErrorContext().
		WithOperation("locate SDK installation").
		WithSuggestion("Pass --sdk-path pointing at a Strand SDK root").
		WithSuggestion("Or set sdk_path in the config file").
		Build()
}

// newInstance builds a runtime instance over the resolved SDK root,
// applying the loaded configuration before anything binds the context.
func newInstance(sink diag.Sink) (*sdk.Instance, error) {
	res := resource.NewOS()
	style := resource.NativeStyle()

	root, err := resolveSDKRoot(res, style)
	if err != nil {
		return nil, err
	}

	catalog := discovery.NewBuilder(res, style, sink).FromFolder(root)
	inst := sdk.New(res, style, sink, root, catalog)

	cfg := currentConfig()
	if err := inst.Options().SetUseBundle(cfg.UseBundle); err != nil {
		return nil, err
	}
	for _, name := range cfg.Features {
		if err := inst.Options().EnableFeature(name); err != nil {
			return nil, err
		}
	}

	return inst, nil
}

// newSink returns the diagnostics sink commands report through.
func newSink() diag.Sink {
	if verbose {
		return diag.NewLogger(os.Stderr)
	}
	// Without --verbose only error-severity records surface.
	return &errorOnlySink{inner: diag.NewLogger(os.Stderr)}
}

// currentConfig returns the loaded configuration, falling back to defaults
// when initialization has not run (e.g., in tests).
func currentConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return config.DefaultConfig()
}

// errorOnlySink forwards only error-severity records, keeping the default
// output quiet about recoverable skips.
type errorOnlySink struct {
	inner diag.Sink
}

// Emit implements diag.Sink.
func (s *errorOnlySink) Emit(rec diag.Record) {
	if rec.Severity == diag.SeverityError {
		s.inner.Emit(rec)
	}
}

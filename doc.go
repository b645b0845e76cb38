// Package brandkit validates tenant brand configurations and turns them into
// design tokens.
//
// The root package is a thin facade over the packages that do the work:
//
//	pkg/color       colour space conversion, scales, contrast and harmony
//	pkg/brand       brand configuration model, YAML loading, SVG sanitising
//	pkg/validation  rule engine, scoring, report cache and metrics
//	pkg/tokens      theme generation, CSS custom properties and stylesheet
//	pkg/config      engine settings from YAML and BRANDKIT_* variables
//
// Quick start:
//
//	kit := brandkit.New(nil)
//	cfg, err := brandkit.LoadConfig("brand.yaml")
//	if err != nil {
//		return err
//	}
//	report := kit.Validate(cfg, brandkit.Context{Audience: "low-vision"})
//	css, err := kit.Stylesheet(cfg)
package brandkit

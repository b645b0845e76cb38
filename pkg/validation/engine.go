package validation

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/goliatone/go-brandkit/pkg/brand"
)

// Option customises an Engine.
type Option func(*Engine)

// WithCache replaces the default cache. Pass nil to disable caching.
func WithCache(cache *Cache) Option {
	return func(e *Engine) {
		e.cache = cache
		e.cacheSpecified = true
	}
}

// WithPenalties overrides the scoring penalty table.
func WithPenalties(penalties PenaltyTable) Option {
	return func(e *Engine) {
		e.scorer = NewScorer(penalties)
	}
}

// WithClock sets the time source used for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger sets the logger. Nil keeps slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics records engine activity on m.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithDisabledRules disables built-in rules by id at construction. Unknown
// ids are logged and ignored.
func WithDisabledRules(ids ...string) Option {
	return func(e *Engine) {
		e.disabled = append(e.disabled, ids...)
	}
}

// Engine runs the registered rules against brand configurations and
// aggregates the results into reports. Safe for concurrent use.
type Engine struct {
	registry       *registry
	scorer         Scorer
	cache          *Cache
	cacheSpecified bool
	logger         *slog.Logger
	metrics        *Metrics
	now            func() time.Time
	disabled       []string
}

// New builds an engine with the built-in rules registered and enabled, and a
// cache using DefaultCacheTTL unless WithCache says otherwise.
func New(options ...Option) *Engine {
	e := &Engine{
		registry: newRegistry(),
		scorer:   NewScorer(nil),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if !e.cacheSpecified {
		e.cache = NewCache()
	}

	for _, rule := range BuiltinRules() {
		if _, err := e.registry.register(rule); err != nil {
			// Built-ins are static; a failure here is a programming error.
			panic(err)
		}
	}
	for _, id := range e.disabled {
		if err := e.registry.setEnabled(id, false); err != nil {
			e.logger.Warn("validation: ignoring disabled rule", "rule_id", id, "error", err)
		}
	}
	return e
}

// AddCustomRule registers rule after the existing rules. It fails with
// ErrDuplicateRuleID when the id is taken and ErrInvalidRule when the rule's
// info is incomplete.
func (e *Engine) AddCustomRule(rule Rule) error {
	info, err := e.registry.register(rule)
	if err != nil {
		return err
	}
	e.logger.Debug("validation: custom rule registered", "rule_id", info.ID)
	return nil
}

// Enable turns a registered rule back on.
func (e *Engine) Enable(id string) error {
	return e.registry.setEnabled(id, true)
}

// Disable stops a registered rule from running.
func (e *Engine) Disable(id string) error {
	return e.registry.setEnabled(id, false)
}

// Rules lists registered rules in evaluation order.
func (e *Engine) Rules() []RuleStatus {
	return e.registry.list()
}

// Cache exposes the engine cache, nil when caching is disabled.
func (e *Engine) Cache() *Cache {
	return e.cache
}

// Validate evaluates every enabled rule followed by vctx.Rules and returns
// the aggregated report. It never fails: rule panics and errors become
// failing technical results.
func (e *Engine) Validate(cfg brand.Config, vctx Context) Report {
	start := time.Now()
	cfg = cfg.Normalized()

	entries, generation := e.registry.snapshot()
	fingerprint := Fingerprint(cfg, vctx)
	key := fingerprint + ":" + strconv.FormatUint(generation, 10)

	cacheable := e.cache != nil && len(vctx.Rules) == 0
	switch {
	case cacheable:
		if report, ok := e.cache.Get(key); ok {
			e.metrics.incCacheLookup(CacheHit)
			e.logger.Debug("validation: cache hit", "fingerprint", fingerprint)
			return report
		}
		e.metrics.incCacheLookup(CacheMiss)
	case e.cache != nil:
		e.metrics.incCacheLookup(CacheBypass)
	}

	results := make([]Result, 0, len(entries)+len(vctx.Rules))
	for _, entry := range entries {
		results = append(results, e.evaluate(entry.rule, entry.info, cfg, vctx))
	}
	results = append(results, e.evaluateExtra(cfg, vctx)...)

	report := e.scorer.Aggregate(results, e.now())
	report.Fingerprint = fingerprint

	if cacheable {
		e.cache.Set(key, report)
	}
	e.metrics.observeReport(report, time.Since(start).Seconds())
	e.logger.Debug("validation: completed",
		"fingerprint", fingerprint,
		"total", report.Total,
		"failed", report.Failed,
		"overall", report.Scores.Overall,
	)
	return report
}

// evaluateExtra runs per-call rules. A rule whose id collides with a
// registered rule or an earlier per-call rule is reported, not run.
func (e *Engine) evaluateExtra(cfg brand.Config, vctx Context) []Result {
	if len(vctx.Rules) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(vctx.Rules))
	out := make([]Result, 0, len(vctx.Rules))
	for i, rule := range vctx.Rules {
		if rule == nil {
			continue
		}
		info, err := ruleInfo(rule)
		if err != nil {
			info = RuleInfo{ID: fmt.Sprintf("context.rules[%d]", i)}
			out = append(out, e.executionFailure(info, &RuleExecutionError{RuleID: info.ID, Err: err}))
			continue
		}
		if err := validateInfo(info); err != nil {
			out = append(out, e.executionFailure(info, &RuleExecutionError{RuleID: info.ID, Err: err}))
			continue
		}
		_, repeated := seen[info.ID]
		if repeated || e.registry.has(info.ID) {
			out = append(out, Result{
				RuleID:     info.ID,
				Severity:   SeverityWarning,
				Category:   CategoryTechnical,
				Code:       CodeDuplicateRuleID,
				Message:    fmt.Sprintf("rule id %q is already registered", info.ID),
				Suggestion: "Give per-call rules ids that do not collide with registered rules",
			})
			continue
		}
		seen[info.ID] = struct{}{}
		out = append(out, e.evaluate(rule, info, cfg, vctx))
	}
	return out
}

func (e *Engine) evaluate(rule Rule, info RuleInfo, cfg brand.Config, vctx Context) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = e.executionFailure(info, &RuleExecutionError{RuleID: info.ID, Err: fmt.Errorf("panic: %v", r)})
		}
	}()

	out, err := rule.Evaluate(cfg, vctx)
	if err != nil {
		return e.executionFailure(info, &RuleExecutionError{RuleID: info.ID, Err: err})
	}
	out.RuleID = info.ID
	out.Category = info.Category
	out.Severity = info.Severity
	out.WCAG = info.WCAG
	return out
}

func (e *Engine) executionFailure(info RuleInfo, err *RuleExecutionError) Result {
	e.metrics.incRuleError(info.ID)
	e.logger.Warn("validation: rule execution failed", "rule_id", info.ID, "error", err)
	return Result{
		RuleID:     info.ID,
		Severity:   SeverityWarning,
		Category:   CategoryTechnical,
		Code:       CodeRuleExecutionFailure,
		Message:    err.Error(),
		Suggestion: "Check the rule implementation",
	}
}

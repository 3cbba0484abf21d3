package processor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"referral-guard/internal/fraud"
	"referral-guard/internal/observability"

	"golang.org/x/sync/errgroup"
)

const (
	branchSameDevice = "same_device"
	branchLoop       = "loop"
	branchPatterns   = "patterns"
	branchSharedIP   = "shared_ip"
)

// Processor runs every fraud detector for a referral event and records the
// resulting suspicions.
type Processor struct {
	devices  DeviceRegistry
	loops    fraud.LoopDetector
	patterns PatternDetector
	store    SuspicionStore
	notifier Notifier
	cfg      fraud.Config
	logger   *observability.Logger
	now      func() time.Time
}

// New creates a fraud check processor. notifier may be nil.
func New(
	devices DeviceRegistry,
	loops fraud.LoopDetector,
	patterns PatternDetector,
	store SuspicionStore,
	notifier Notifier,
	cfg fraud.Config,
	logger *observability.Logger,
) *Processor {
	return &Processor{
		devices:  devices,
		loops:    loops,
		patterns: patterns,
		store:    store,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// PerformFraudCheck runs the detectors concurrently and turns every positive
// signal into a suspicion. Each branch is bounded by the configured timeout and
// fails open, so the result only ever lacks signals, never errors.
func (p *Processor) PerformFraudCheck(ctx context.Context, params fraud.CheckParams) fraud.CheckResult {
	return p.check(withCheckFields(ctx, params), params)
}

func (p *Processor) check(ctx context.Context, params fraud.CheckParams) fraud.CheckResult {
	detectedAt := p.now()

	type deviceOutcome struct {
		result fraud.SameDeviceCheckResult
		paired bool
	}

	var (
		sameDevice deviceOutcome
		loop       fraud.LoopCheckResult
		pattern    fraud.PatternCheckResult
		sharedIP   fraud.SharedIPCheckResult
	)

	g, gctx := errgroup.WithContext(ctx)

	if params.FingerprintHash != nil {
		hash := *params.FingerprintHash
		g.Go(func() error {
			sameDevice = runBranch(gctx, p, branchSameDevice, func(ctx context.Context) deviceOutcome {
				result := p.devices.CheckSharedAccounts(ctx, hash, params.ReferredAccountID)
				if !result.IsSuspicious {
					return deviceOutcome{result: result}
				}
				return deviceOutcome{
					result: result,
					paired: p.devices.IsPairOnSameDevice(ctx, hash, params.ReferrerAccountID, params.ReferredAccountID),
				}
			})
			return nil
		})
	}

	g.Go(func() error {
		loop = runBranch(gctx, p, branchLoop, func(ctx context.Context) fraud.LoopCheckResult {
			result, err := p.loops.DetectLoop(ctx, params.ReferrerAccountID, params.ReferredAccountID, p.cfg.MaxLoopDepth)
			if err != nil {
				p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "detector", Value: branchLoop}),
					"loop detection failed, treating as clean", err)
				observability.RecordBranchFailure(branchLoop, "error")
				return fraud.LoopCheckResult{}
			}
			return result
		})
		return nil
	})

	g.Go(func() error {
		pattern = runBranch(gctx, p, branchPatterns, func(ctx context.Context) fraud.PatternCheckResult {
			return p.patterns.CheckPatterns(ctx, params.ReferrerAccountID)
		})
		return nil
	})

	if params.IPAddress != nil {
		ip := *params.IPAddress
		g.Go(func() error {
			sharedIP = runBranch(gctx, p, branchSharedIP, func(ctx context.Context) fraud.SharedIPCheckResult {
				return p.patterns.CheckSharedIP(ctx, params.ReferrerAccountID, ip)
			})
			return nil
		})
	}

	// Branches never return errors
	_ = g.Wait()

	var suspicions []fraud.Suspicion

	if sameDevice.result.IsSuspicious {
		severity := sameDevice.result.Severity
		if sameDevice.paired {
			severity = fraud.SeverityCritical
		}
		suspicions = append(suspicions, fraud.NewSuspicion(severity, fraud.SameDeviceEvidence{
			FingerprintHash:  *params.FingerprintHash,
			AccountCount:     sameDevice.result.AccountCount,
			AccountIDs:       sameDevice.result.AccountIDs,
			PairOnSameDevice: sameDevice.paired,
		}, detectedAt))
	}

	if loop.IsLoop {
		suspicions = append(suspicions, fraud.NewSuspicion(fraud.SeverityHigh, fraud.ReferralLoopEvidence{
			LoopChain:  loop.LoopChain,
			LoopLength: loop.LoopLength,
		}, detectedAt))
	}

	details := strings.Join(pattern.Details, "; ")
	if pattern.RapidReferrals {
		suspicions = append(suspicions, fraud.NewSuspicion(pattern.RapidSeverity, fraud.RapidReferralsEvidence{
			ReferralCount: pattern.ReferralCount,
			Window:        pattern.ReferralWindow,
			Count24h:      pattern.Count24h,
			Count7d:       pattern.Count7d,
			Details:       details,
		}, detectedAt))
	}

	if pattern.QuickCancellations {
		suspicions = append(suspicions, fraud.NewSuspicion(pattern.CancelSeverity, fraud.QuickCancelEvidence{
			CancelCount:       pattern.CancelCount,
			QuickCancelDays:   p.cfg.QuickCancelDays,
			CancelledAccounts: pattern.CancelledAccounts,
			Details:           details,
		}, detectedAt))
	}

	// A busy IP corroborates whatever else fired; on its own it is not a suspicion
	if sharedIP.IsSuspicious {
		for i := range suspicions {
			ip := *params.IPAddress
			suspicions[i].IPAddress = &ip
			suspicions[i].IPSignupCount = sharedIP.Count
		}
	}

	for _, s := range suspicions {
		observability.RecordSuspicionDetected(string(s.Type), string(s.Severity))
	}

	return fraud.CheckResult{
		IsSuspicious: len(suspicions) > 0,
		Suspicions:   suspicions,
	}
}

// runBranch runs fn under the branch timeout. A branch that times out or
// panics is abandoned and contributes its zero value, i.e. no signal.
func runBranch[T any](ctx context.Context, p *Processor, name string, fn func(ctx context.Context) T) T {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.BranchTimeout)
	defer cancel()

	type outcome struct {
		value     T
		recovered interface{}
	}

	start := time.Now()
	ch := make(chan outcome, 1)
	go func() {
		var out outcome
		defer func() {
			if r := recover(); r != nil {
				out = outcome{recovered: r}
			}
			ch <- out
		}()
		out.value = fn(ctx)
	}()

	branchCtx := observability.WithFields(ctx, observability.Field{Key: "detector", Value: name})

	var zero T
	select {
	case out := <-ch:
		observability.ObserveBranchDuration(name, time.Since(start))
		if out.recovered != nil {
			p.logger.Error(branchCtx, "fraud check branch panicked, treating as clean", fmt.Errorf("panic: %v", out.recovered))
			observability.RecordBranchFailure(name, "panic")
			return zero
		}
		return out.value
	case <-ctx.Done():
		p.logger.InfoWithError(branchCtx, "fraud check branch abandoned, treating as clean", ctx.Err())
		observability.RecordBranchFailure(name, "timeout")
		return zero
	}
}

package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"offer-bazar.backend/internal/domain/entities"
)

// ExpiryService is the slice of the merchant service the job needs.
type ExpiryService interface {
	GetExpiryCandidates(ctx context.Context, limit int) ([]*entities.Merchant, error)
	ExpirePackage(ctx context.Context, merchantID uuid.UUID) (bool, error)
}

// PackageExpiryJob periodically sweeps merchants whose subscription window
// has ended and runs the expiry transition for each.
type PackageExpiryJob struct {
	merchantUC ExpiryService
	interval   time.Duration
	stop       chan struct{}
}

func NewPackageExpiryJob(merchantUC ExpiryService, interval time.Duration) *PackageExpiryJob {
	if interval <= 0 {
		interval = time.Hour
	}
	return &PackageExpiryJob{
		merchantUC: merchantUC,
		interval:   interval,
		stop:       make(chan struct{}),
	}
}

func (j *PackageExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting package expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	// Run once at startup so overdue windows do not wait a full interval.
	j.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Package expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Package expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *PackageExpiryJob) Stop() {
	close(j.stop)
}

func (j *PackageExpiryJob) sweep(ctx context.Context) {
	candidates, err := j.merchantUC.GetExpiryCandidates(ctx, 100)
	if err != nil {
		log.Printf("❌ Error fetching expiry candidates: %v", err)
		return
	}

	if len(candidates) == 0 {
		return
	}

	log.Printf("🔄 Processing %d overdue merchant packages...", len(candidates))

	expired := 0
	for _, m := range candidates {
		// The transition re-checks under lock, a merchant renewed between
		// the sweep query and here is skipped.
		ok, err := j.merchantUC.ExpirePackage(ctx, m.ID)
		if err != nil {
			log.Printf("❌ Error expiring package for merchant %s: %v", m.ID, err)
			continue
		}
		if ok {
			expired++
		}
	}

	log.Printf("✅ Expired %d merchant packages", expired)
}

package engagement

import (
	"context"
	"fmt"
	"log"

	"github.com/Divya-010704/TripTeller/internal/models"
	"github.com/Divya-010704/TripTeller/internal/repositories"
)

// placeholderPattern produces the synthetic identities used to backfill
// legacy records. They cannot recover who actually liked; they only restore
// the count/membership invariant.
const placeholderPattern = "unknown%d@example.com"

// RepairReport summarizes one fix-likes run.
type RepairReport struct {
	ProfilesScanned  int `json:"profiles_scanned"`
	ProfilesRepaired int `json:"profiles_repaired"`
	ProfilesFailed   int `json:"profiles_failed"`
}

// Repairer backfills missing liked_by sets on legacy photo and video
// engagement records. Safe to invoke repeatedly: once a record has its
// placeholder identities the trigger condition no longer holds.
type Repairer struct {
	profiles repositories.ProfileRepository
}

// NewRepairer creates a new Repairer
func NewRepairer(profiles repositories.ProfileRepository) *Repairer {
	return &Repairer{profiles: profiles}
}

// repairRecords backfills every record in one asset map whose count is
// positive but whose membership set is empty. Reports whether anything
// changed.
func repairRecords(records map[string]*models.EngagementRecord) bool {
	changed := false
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if rec.LikeCount > 0 && len(rec.LikedBy) == 0 {
			for i := 1; i <= rec.LikeCount; i++ {
				rec.LikedBy = append(rec.LikedBy, fmt.Sprintf(placeholderPattern, i))
			}
			changed = true
		}
	}
	return changed
}

// Run scans every profile and persists each dirty one exactly once. A
// profile that fails to save is logged and skipped; the batch continues.
func (r *Repairer) Run(ctx context.Context) (RepairReport, error) {
	profiles, err := r.profiles.GetProfiles(ctx)
	if err != nil {
		return RepairReport{}, err
	}

	report := RepairReport{ProfilesScanned: len(profiles)}
	for i := range profiles {
		profile := &profiles[i]
		changed := false
		for j := range profile.Posts {
			post := &profile.Posts[j]
			if repairRecords(post.PhotoLikes) {
				changed = true
			}
			if repairRecords(post.VideoLikes) {
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := r.profiles.ReplaceProfile(ctx, profile); err != nil {
			log.Printf("fix-likes: failed to save profile %s: %v", profile.ID.Hex(), err)
			report.ProfilesFailed++
			continue
		}
		report.ProfilesRepaired++
	}
	return report, nil
}
